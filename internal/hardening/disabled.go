//go:build !optrefhardened
// +build !optrefhardened

package hardening

const Enabled = false
