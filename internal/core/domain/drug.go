package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Field identifies one of the four drug property inputs.
type Field string

// Drug property fields.
const (
	FieldLogP   Field = "logp"
	FieldDeltaD Field = "delta_d"
	FieldDeltaP Field = "delta_p"
	FieldDeltaH Field = "delta_h"
)

// AllFields returns the fields in display order.
func AllFields() []Field {
	return []Field{FieldLogP, FieldDeltaD, FieldDeltaP, FieldDeltaH}
}

// Label returns the human-readable field label.
func (f Field) Label() string {
	switch f {
	case FieldLogP:
		return "log P"
	case FieldDeltaD:
		return "δD (dispersion)"
	case FieldDeltaP:
		return "δP (polar)"
	case FieldDeltaH:
		return "δH (hydrogen bonding)"
	default:
		return string(f)
	}
}

// DrugProperties holds the four user-supplied drug descriptors.
// Values are kept verbatim as entered; the empty string means unset.
// PresetID records which catalog drug supplied the current values, if any.
type DrugProperties struct {
	LogP   string
	DeltaD string
	DeltaP string
	DeltaH string

	PresetID string
}

// SelectPreset overwrites all four fields atomically from the catalog entry
// and records the selection. An unknown id clears the selection indicator and
// leaves the fields untouched.
func (d *DrugProperties) SelectPreset(id string) {
	p, ok := PresetByID(id)
	if !ok {
		d.PresetID = ""
		return
	}
	d.LogP = strconv.FormatFloat(p.LogP, 'f', -1, 64)
	d.DeltaD = strconv.FormatFloat(p.HSP.DeltaD, 'f', -1, 64)
	d.DeltaP = strconv.FormatFloat(p.HSP.DeltaP, 'f', -1, 64)
	d.DeltaH = strconv.FormatFloat(p.HSP.DeltaH, 'f', -1, 64)
	d.PresetID = id
}

// SetField stores a single field verbatim. A manual edit detaches any
// previously selected preset, since the values no longer match the catalog.
func (d *DrugProperties) SetField(f Field, value string) {
	switch f {
	case FieldLogP:
		d.LogP = value
	case FieldDeltaD:
		d.DeltaD = value
	case FieldDeltaP:
		d.DeltaP = value
	case FieldDeltaH:
		d.DeltaH = value
	default:
		return
	}
	d.PresetID = ""
}

// FieldValue returns the stored value for a field.
func (d *DrugProperties) FieldValue(f Field) string {
	switch f {
	case FieldLogP:
		return d.LogP
	case FieldDeltaD:
		return d.DeltaD
	case FieldDeltaP:
		return d.DeltaP
	case FieldDeltaH:
		return d.DeltaH
	default:
		return ""
	}
}

// Complete reports whether all four fields are non-empty. This is the only
// gate on request submission; plausibility of the values is not checked.
func (d *DrugProperties) Complete() bool {
	return d.LogP != "" && d.DeltaD != "" && d.DeltaP != "" && d.DeltaH != ""
}

// BuildRequest parses the fields into a wire payload. Incomplete input
// returns ErrIncompleteProperties; non-numeric input returns ErrInvalidNumber
// rather than letting NaN reach the service.
func (d *DrugProperties) BuildRequest() (PredictionRequest, error) {
	if !d.Complete() {
		return PredictionRequest{}, ErrIncompleteProperties
	}

	var req PredictionRequest
	var err error

	if req.DrugLogP, err = parseField(FieldLogP, d.LogP); err != nil {
		return PredictionRequest{}, err
	}
	if req.DrugHSP.DeltaD, err = parseField(FieldDeltaD, d.DeltaD); err != nil {
		return PredictionRequest{}, err
	}
	if req.DrugHSP.DeltaP, err = parseField(FieldDeltaP, d.DeltaP); err != nil {
		return PredictionRequest{}, err
	}
	if req.DrugHSP.DeltaH, err = parseField(FieldDeltaH, d.DeltaH); err != nil {
		return PredictionRequest{}, err
	}

	return req, nil
}

func parseField(f Field, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	// ParseFloat accepts "NaN" and "Inf" spellings, which json.Marshal
	// cannot encode, so non-finite values are rejected here as well.
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidNumber, f, value)
	}
	return v, nil
}
