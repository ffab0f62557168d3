// Package utils contains loose-typed value conversion helpers.
//
// Database drivers and spreadsheet cells hand back values in a variety of Go
// types (int64, float64, []byte, string). These helpers collapse them into
// the canonical types the loader compares and registers keys with.
package utils
