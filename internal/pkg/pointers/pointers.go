// Package pointers builds *T values inline, mostly for the nullable
// columns on inventory rows (stock concentration, grid coordinates).
package pointers

func Float64(v float64) *float64 { return &v }
func Int(v int) *int             { return &v }
func String(v string) *string    { return &v }
