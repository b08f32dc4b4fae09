//go:build windows

package netcheck

import "golang.org/x/sys/windows"

var errAddrInUse error = windows.WSAEADDRINUSE
