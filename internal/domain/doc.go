// Package domain contains the core dough model for pizzadough.
//
// The yeast/ingredient and timeline models are pure arithmetic over plain
// values: they never read files, parse flags or format output, and they clamp
// out-of-range inputs instead of rejecting them. Validation of user-supplied
// parameters lives in Params.Validate and is the caller's responsibility.
// Infra/adapters map into/from these types.
package domain
