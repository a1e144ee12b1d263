package server

import (
	"context"
	"fmt"
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// Listen opens a TCP listener with SO_REUSEADDR set explicitly through a
// Control callback, rather than trusting a platform's default socket
// options. net.Listen has no backlog parameter; backlog is accepted here
// only so callers can record the configured value, the kernel's default
// backlog is what actually applies.
func Listen(address string, backlog int) (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(network, address string, c syscall.RawConn) error {
			var sockErr error
			if err := c.Control(func(fd uintptr) {
				sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			}); err != nil {
				return err
			}
			return sockErr
		},
	}
	ln, err := lc.Listen(context.Background(), "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("server: listen %s: %w", address, err)
	}
	_ = backlog
	return ln, nil
}
