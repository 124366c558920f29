package patch

// Coalesce returns *ptr, or fallback when ptr is nil. Partial-update requests use it for
// fields the client left out.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// NonZero returns v unless it is the zero value of T, in which case fallback is returned
func NonZero[T comparable](v, fallback T) T {
	var zero T
	if v == zero {
		return fallback
	}
	return v
}

func Ptr[T any](v T) *T {
	return &v
}
