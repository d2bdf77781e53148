package unwrap

// unreachable is the halt path of UnsafeUnwrap. It is only reachable when
// checksEnabled is true; with the unwrapnocheck tag every call site guards
// it behind a constant-false condition and the compiler removes the branch.
func unreachable(msg string) {
	panic(msg)
}
