package domain

// PredictionAttempt identifies one outbound prediction request.
// Seq orders attempts within a session; only the attempt whose Seq is still
// current may populate the result slot when it completes. ID is carried for
// logging only.
type PredictionAttempt struct {
	Seq     uint64
	ID      string
	Request PredictionRequest
}
