package slist

// Removes every element equal to value. Returns ErrEmptyContainer when l
// holds nothing. This is a function rather than a method because it needs
// T to be comparable, which List itself doesn't require.
func Remove[T comparable](l *List[T], value T) error {
	return l.RemoveFunc(func(v T) bool {
		return v == value
	})
}
