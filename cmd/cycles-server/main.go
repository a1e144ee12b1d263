// Command cycles-server runs the authoritative game loop and listens for
// TCP clients.
package main

import (
	"fmt"
	"os"

	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/server"
)

const defaultPort = "7070"

func main() {
	cfg := config.DefaultConfig()
	if path := os.Getenv("CYCLES_CONFIG"); path != "" {
		loaded, err := config.LoadYAML(path)
		if err != nil {
			fmt.Printf("cycles-server: loading %s: %v\n", path, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
		fmt.Printf("PORT not set, defaulting to %s\n", port)
	}
	address := ":" + port

	srv, err := server.New(cfg, address)
	if err != nil {
		fmt.Printf("cycles-server: %v\n", err)
		os.Exit(1)
	}
	defer srv.Close()

	srv.Run()
}
