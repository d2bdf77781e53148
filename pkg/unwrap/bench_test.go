package unwrap

import "testing"

// The benchmarks compare checked extraction against unchecked extraction on
// containers whose precondition holds. Under -tags unwrapnocheck the
// unchecked variants reduce to a field load and must not be slower than the
// checked ones.

var sinkInt int

func BenchmarkOptionMustUnwrap(b *testing.B) {
	o := Some(1)
	for i := 0; i < b.N; i++ {
		sinkInt = o.MustUnwrap()
	}
}

func BenchmarkOptionUnsafeUnwrap(b *testing.B) {
	o := Some(1)
	for i := 0; i < b.N; i++ {
		sinkInt = o.UnsafeUnwrap()
	}
}

func BenchmarkResultMustUnwrap(b *testing.B) {
	r := Success(1)
	for i := 0; i < b.N; i++ {
		sinkInt = r.MustUnwrap()
	}
}

func BenchmarkResultUnsafeUnwrap(b *testing.B) {
	r := Success(1)
	for i := 0; i < b.N; i++ {
		sinkInt = r.UnsafeUnwrap()
	}
}
