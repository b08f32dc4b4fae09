//go:build js || wasip1

package netcheck

import "syscall"

var errAddrInUse error = syscall.EADDRINUSE
