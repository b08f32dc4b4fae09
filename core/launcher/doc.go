// Package launcher brings up the static file server and keeps it running.
//
// A run follows a fixed sequence: the serving root is the directory of the
// executable, the listener is bound on all interfaces at the fixed port, the
// status banner is printed, a browser is opened on a best-effort basis, and the
// server answers requests until the context is cancelled.
//
// # Failures
//
//   - PortInUseError: another process holds the port. Detected from the
//     structured errno and never retried on another port.
//   - Any other listen error is returned wrapped and reported verbatim.
//   - Browser launch errors are downgraded to a hint line.
//
// PrintFailure renders a returned error as console lines.
package launcher
