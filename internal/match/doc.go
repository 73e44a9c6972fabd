// Package match provides name normalization and Levenshtein distance for
// "did you mean" suggestions and near-duplicate field detection.
//
// Key functions:
//   - Words / Fold: split and fold names for loose comparison
//   - Levenshtein: computes edit distance between strings
//   - RankNames / Suggest: ranks known names against an unresolved one
package match
