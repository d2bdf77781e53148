//go:build !unwrapnocheck

package unwrap

// checksEnabled selects the checked configuration: UnsafeUnwrap verifies
// presence and halts on violation. This is the default; release builds
// disable it with -tags unwrapnocheck.
const checksEnabled = true
