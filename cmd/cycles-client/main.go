// Command cycles-client connects to a cycles-server, renders the arena as
// colored ASCII, and steers with the arrow keys.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/lguibr/cycles/client"
	"github.com/lguibr/cycles/geom"
	"github.com/lguibr/cycles/render"
	"golang.org/x/sys/unix"
)

func setRawMode(fd uintptr) (*unix.Termios, error) {
	saved, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	if err != nil {
		return nil, err
	}
	restore := *saved
	raw := *saved
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8

	if err := unix.IoctlSetTermios(int(fd), unix.TCSETS, &raw); err != nil {
		return nil, err
	}
	return &restore, nil
}

func restoreMode(fd uintptr, saved *unix.Termios) {
	unix.IoctlSetTermios(int(fd), unix.TCSETS, saved)
}

func main() {
	name := os.Getenv("CYCLES_NAME")
	if name == "" {
		name = "player"
	}
	address := os.Getenv("CYCLES_ADDRESS")
	if address == "" {
		address = "127.0.0.1:7070"
	}

	c, err := client.Connect(name, address)
	if err != nil {
		fmt.Printf("cycles-client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	saved, err := setRawMode(os.Stdin.Fd())
	if err == nil {
		defer restoreMode(os.Stdin.Fd(), saved)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	go func() {
		<-sigc
		if saved != nil {
			restoreMode(os.Stdin.Fd(), saved)
		}
		os.Exit(0)
	}()

	go readKeys(c)

	for {
		snap, err := c.RecvSnapshot()
		if err != nil {
			fmt.Printf("cycles-client: connection closed: %v\n", err)
			return
		}
		render.ClearScreen()
		fmt.Println(render.StatusLine(snap))
		fmt.Print(render.Frame(snap))
		if snap.Over {
			return
		}
	}
}

// readKeys translates arrow-key escape sequences into moves and feeds them
// back to the server as fast as the player presses them.
func readKeys(c *client.Client) {
	buf := make([]byte, 3)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return
		}
		if n < 3 || buf[0] != 0x1b || buf[1] != '[' {
			continue
		}
		var dir geom.Direction
		switch buf[2] {
		case 'A':
			dir = geom.North
		case 'B':
			dir = geom.South
		case 'C':
			dir = geom.East
		case 'D':
			dir = geom.West
		default:
			continue
		}
		if err := c.SendMove(dir); err != nil {
			return
		}
	}
}
