/*
Package hardening converts specific caller precondition violations
into a deterministic process abort.

By default Enabled is false and callers perform no extra checks: an
unchecked dereference of an empty view falls straight through to the
runtime's nil dereference. Building with the "optrefhardened" tag
flips Enabled so that call sites abort through Abort instead, giving
hardened binaries a recognizable crash signature.
*/
package hardening

import (
	"fmt"
	"os"
)

// 128+SIGABRT, the status a C abort() exits with.
const abortStatus = 134

// Abort writes a crash line to stderr and terminates the process.
// It never returns.
func Abort(msg string) {
	fmt.Fprintf(os.Stderr, "optref: precondition violated: %s\n", msg)
	os.Exit(abortStatus)
}
