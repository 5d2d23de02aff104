// Package ir provides the canonical value representation used for puzzle
// and result identity.
//
// Every identifier the store keeps is content-addressed: puzzle text is
// normalised and hashed, and solve results are serialised to canonical JSON
// before hashing. ir imports nothing internal so any package may depend on
// it.
//
// Key design constraints:
//   - NO float types anywhere, use int64 for numbers
//   - NO null values in canonical JSON
//   - All JSON keys use snake_case
package ir
