package launcher

import (
	"errors"
	"fmt"
	"io"
)

// ErrNoRoot is returned by Run when no serving root is configured.
var ErrNoRoot = errors.New("serving root is not set")

// PortInUseError reports that another process already holds the port.
type PortInUseError struct {
	Port int
	// Owner describes the holding process, empty when unknown.
	Owner string
	Err   error
}

func (e *PortInUseError) Error() string {
	return fmt.Sprintf("port %d is already in use", e.Port)
}

func (e *PortInUseError) Unwrap() error {
	return e.Err
}

// PrintFailure writes the console lines describing a startup failure.
func PrintFailure(w io.Writer, err error) {
	var perr *PortInUseError
	if errors.As(err, &perr) {
		fmt.Fprintf(w, "❌ Port %d is already in use\n", perr.Port)
		if perr.Owner != "" {
			fmt.Fprintf(w, "   held by %s\n", perr.Owner)
		}
		fmt.Fprintln(w, "💡 Close the program using this port, or change the port number")
		return
	}

	fmt.Fprintf(w, "❌ Failed to start: %v\n", err)
}
