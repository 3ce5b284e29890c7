// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SessionService owns the session state machine around the single
// prediction call; the interpreter functions are pure derivations
// over a PredictionResponse.
package services
