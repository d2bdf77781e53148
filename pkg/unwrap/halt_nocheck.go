//go:build unwrapnocheck

package unwrap

// checksEnabled selects the unchecked configuration: UnsafeUnwrap performs
// no presence check at all. Violating its precondition in this mode returns
// the container's zero-valued payload slot, silently.
const checksEnabled = false
