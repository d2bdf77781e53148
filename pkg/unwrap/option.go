package unwrap

// Option holds either a present value of T or nothing.
type Option[T any] struct {
	value   T
	present bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value:   v,
		present: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p) when p is non-nil, otherwise None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.present
}

func (o Option[T]) IsNone() bool {
	return !o.present
}

// Value returns the held value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.present
}

// MustUnwrap returns the held value. It panics if the Option is absent,
// in every build mode.
func (o Option[T]) MustUnwrap() T {
	if !o.present {
		panic("unwrap: MustUnwrap of absent Option")
	}
	return o.value
}

// UnsafeUnwrap returns the held value without a presence check. The caller
// must have already established that a value is present. With the
// unwrapnocheck build tag the guard branch compiles away entirely; without
// it an absent Option halts with a diagnostic.
func (o Option[T]) UnsafeUnwrap() T {
	if checksEnabled && !o.present {
		unreachable("unwrap: UnsafeUnwrap of absent Option")
	}
	return o.value
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// Take moves the value out, leaving the Option absent. The second return
// reports whether a value was present to take.
func (o *Option[T]) Take() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	v := o.value
	*o = Option[T]{}
	return v, true
}
