//go:build plan9

package netcheck

import "syscall"

// The Plan 9 IP stack reports a busy port as this error string.
var errAddrInUse error = syscall.ErrorString("address in use")
