// Package domain defines the core business entities for LipidLogic.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DrugProperties: The four user-supplied drug descriptors
//   - Preset: A validation drug from the fixed catalog
//   - PredictionRequest/PredictionResponse: The scoring service wire contract
//   - PredictionAttempt: One outbound request, ordered for stale suppression
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
