// Package server holds the constants and per-run settings of the static server.
//
// The port is a fixed constant rather than a configurable value: the launcher
// always binds DefaultPort on all interfaces and never retries another port.
//
// # Configuration
//
// The Config struct pairs the port with the serving root and derives the
// listen address and the URL printed to the user.
package server
