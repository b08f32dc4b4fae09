package server

import (
	"fmt"
	"net"
	"strconv"
)

const (
	// DefaultPort is the fixed port the launcher listens on.
	DefaultPort = 8080
	// IndexFile is served for directory requests when present.
	IndexFile = "index.html"
)

// Config describes a single launcher run.
type Config struct {
	// Port is the TCP port bound on all interfaces.
	Port int
	// Root is the absolute serving root.
	Root string
}

// Address returns the listen address covering all local interfaces.
func (c Config) Address() string {
	return net.JoinHostPort("", strconv.Itoa(c.Port))
}

// URL returns the address users open in a browser.
func (c Config) URL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
