package slist

// Error allows the package's sentinel errors to be declared as constants.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// Returned by any operation that reads or removes an element
	// from a list holding none.
	ErrEmptyContainer Error = "slist: empty container"

	// Returned when a position is not a valid slot for the operation.
	ErrOutOfRange Error = "slist: position out of range"
)
