package domain

// Preset describes a validation drug with published physicochemical data.
// The catalog values mirror the scoring service's validation compounds.
type Preset struct {
	// ID is the catalog key, e.g. "pyrene".
	ID string

	// Name is the display name, e.g. "Pyrene".
	Name string

	// SMILES is the structural notation for the compound.
	SMILES string

	// LogP is the octanol-water partition coefficient (log scale).
	LogP float64

	// HSP holds the Hansen solubility parameters.
	HSP HSP

	// Classification describes the lipophilicity class.
	Classification string

	// OptimalFormulation is the experimentally confirmed best carrier, if known.
	OptimalFormulation string
}

// presetCatalog is the fixed set of validation drugs selectable in the client.
// Order matters for display; lookup goes through PresetByID.
var presetCatalog = []Preset{
	{
		ID:                 "pyrene",
		Name:               "Pyrene",
		SMILES:             "C1=CC2=C3C(=C1)C=CC4=CC=CC(=C43)C=C2",
		LogP:               5.19,
		HSP:                HSP{DeltaD: 20.4, DeltaP: 5.0, DeltaH: 3.5},
		Classification:     "Highly lipophilic",
		OptimalFormulation: "F4",
	},
	{
		ID:                 "nile_red",
		Name:               "Nile Red",
		SMILES:             "CCN(CC)C1=CC2=C(C=C1)C(=O)C3=C(O2)C=CC4=C3C=CC(=C4)N(CC)CC",
		LogP:               4.0,
		HSP:                HSP{DeltaD: 19.8, DeltaP: 6.5, DeltaH: 5.2},
		Classification:     "Moderately lipophilic",
		OptimalFormulation: "F2",
	},
	{
		ID:             "curcumin",
		Name:           "Curcumin",
		LogP:           3.29,
		HSP:            HSP{DeltaD: 21.2, DeltaP: 7.4, DeltaH: 9.1},
		Classification: "Moderately lipophilic",
	},
	{
		ID:             "ibuprofen",
		Name:           "Ibuprofen",
		LogP:           3.97,
		HSP:            HSP{DeltaD: 18.0, DeltaP: 5.5, DeltaH: 8.5},
		Classification: "Moderately lipophilic",
	},
}

// Presets returns the catalog in display order.
func Presets() []Preset {
	out := make([]Preset, len(presetCatalog))
	copy(out, presetCatalog)
	return out
}

// PresetByID looks up a preset by its catalog key.
func PresetByID(id string) (Preset, bool) {
	for _, p := range presetCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}
