package netcheck

import (
	"context"
	"errors"
	"fmt"

	gnet "github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// ErrNoOwner is returned when no listening socket matches the port.
var ErrNoOwner = errors.New("no process is listening on the port")

// IsAddrInUse reports whether err carries the platform's address-in-use errno.
func IsAddrInUse(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, errAddrInUse)
}

// Owner identifies the process holding a listening port.
type Owner struct {
	PID  int32
	Name string
}

func (o Owner) String() string {
	if o.Name == "" {
		return fmt.Sprintf("pid %d", o.PID)
	}
	return fmt.Sprintf("%s (pid %d)", o.Name, o.PID)
}

// PortOwner finds the process listening on the TCP port.
// Unprivileged callers may not see sockets of other users.
func PortOwner(ctx context.Context, port int) (Owner, error) {
	conns, err := gnet.ConnectionsWithContext(ctx, "tcp")
	if err != nil {
		return Owner{}, fmt.Errorf("failed to list connections: %w", err)
	}

	for _, c := range conns {
		if c.Status != "LISTEN" || int(c.Laddr.Port) != port || c.Pid == 0 {
			continue
		}

		owner := Owner{PID: c.Pid}
		if p, err := process.NewProcessWithContext(ctx, c.Pid); err == nil {
			owner.Name, _ = p.NameWithContext(ctx)
		}
		return owner, nil
	}

	return Owner{}, ErrNoOwner
}
