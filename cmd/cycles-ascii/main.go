// Command cycles-ascii is a scripted demo client: it connects, always
// steers east, and prints the ASCII-rendered snapshot each tick. Any move
// policy satisfies the server's contract — this one is illustrative, not
// a reference AI.
package main

import (
	"fmt"
	"os"

	"github.com/lguibr/cycles/client"
	"github.com/lguibr/cycles/render"
)

func main() {
	name := os.Getenv("CYCLES_NAME")
	if name == "" {
		name = "wanderer"
	}
	address := os.Getenv("CYCLES_ADDRESS")
	if address == "" {
		address = "127.0.0.1:7070"
	}

	c, err := client.Connect(name, address)
	if err != nil {
		fmt.Printf("cycles-ascii: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	for {
		snap, err := c.RecvSnapshot()
		if err != nil {
			fmt.Printf("cycles-ascii: connection closed: %v\n", err)
			return
		}

		render.ClearScreen()
		fmt.Println(render.StatusLine(snap))
		fmt.Print(render.Frame(snap))

		if snap.Over {
			return
		}
		if err := c.SendMove(client.AlwaysEast(snap)); err != nil {
			fmt.Printf("cycles-ascii: send move: %v\n", err)
			return
		}
	}
}
