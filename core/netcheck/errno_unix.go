//go:build unix

package netcheck

import "golang.org/x/sys/unix"

var errAddrInUse error = unix.EADDRINUSE
