package ptr

// Of returns a pointer to a copy of v.
func Of[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or def for a nil pointer.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
