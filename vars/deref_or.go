package vars

// DerefOr returns *ptr, or def if ptr is nil.
func DerefOr[T any](ptr *T, def T) T {
	if ptr == nil {
		return def
	}
	return *ptr
}
