// Package netcheck inspects listener failures and port ownership.
//
// IsAddrInUse matches the structured errno (EADDRINUSE, WSAEADDRINUSE on
// Windows) instead of the platform- and locale-dependent error text.
// PortOwner asks the OS socket table, through gopsutil, which process holds a
// listening port so diagnostics can name it.
package netcheck
