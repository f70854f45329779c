package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Provided reports whether any of the optional fields of a partial update was sent.
func Provided(set ...bool) bool {
	for _, s := range set {
		if s {
			return true
		}
	}
	return false
}
