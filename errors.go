package ringlist

// ConstError is an error that can be declared as a constant and compared
// with errors.Is.
type ConstError string

func (err ConstError) Error() string { return string(err) }

const (
	// EmptyListErr is returned by RemoveIndex when the list has no real
	// nodes; nothing was done.
	EmptyListErr ConstError = "the list is empty, nothing was done"

	// IndexOutOfBoundsErr is returned by RemoveIndex when the index is
	// negative or not less than the list's size; nothing was done.
	IndexOutOfBoundsErr ConstError = "index out of bounds"

	// NotFoundErr is returned by RemoveIndex when a bounds-checked index
	// can't be reached by walking the ring. It signals a broken ring
	// invariant, not routine control flow.
	NotFoundErr ConstError = "the index couldn't be found, nothing was done"
)
