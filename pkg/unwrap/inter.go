package unwrap

// Unwrapper is implemented by containers whose payload can be extracted
// without a presence check once the caller has established, through
// independent program logic, that the payload exists. Implementations for
// new container shapes must return the payload when it is present and call
// the halt path when it is not.
type Unwrapper[T any] interface {
	// UnsafeUnwrap moves the payload out of the container without checking.
	UnsafeUnwrap() T
}

// Checked is the guarded counterpart of Unwrapper: extraction verifies
// presence in every build mode and panics on violation.
type Checked[T any] interface {
	// MustUnwrap moves the payload out, panicking if it is absent.
	MustUnwrap() T
}

var (
	_ Unwrapper[int] = Option[int]{}
	_ Unwrapper[int] = Result[int]{}
	_ Checked[int]   = Option[int]{}
	_ Checked[int]   = Result[int]{}
)
