package server

import (
	"fmt"
	"net"
	"sync/atomic"

	"github.com/lguibr/cycles/bollywood"
	"github.com/lguibr/cycles/config"
	"github.com/lguibr/cycles/game"
)

// Server owns the listener, the WorldActor, and the two cooperating flows
// that drive it: an accept phase and a tick phase, never running at once.
// One world, one arena, two flows — not a per-connection actor per room,
// which is what a server hosting many independent games would want.
type Server struct {
	cfg      config.Config
	ln       net.Listener
	engine   *bollywood.Engine
	worldPID *bollywood.PID
	table    *SocketTable
}

func New(cfg config.Config, address string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ln, err := Listen(address, cfg.ListenBacklog)
	if err != nil {
		return nil, err
	}

	engine := bollywood.NewEngine()
	worldPID := engine.Spawn(game.NewWorldActorProps(cfg, game.DefaultSeed))

	return &Server{
		cfg:      cfg,
		ln:       ln,
		engine:   engine,
		worldPID: worldPID,
		table:    NewSocketTable(),
	}, nil
}

// Run alternates accept and tick phases forever: fill the arena up to
// max_clients, then play one game to completion, then accept again.
func (s *Server) Run() {
	fmt.Printf("server: listening on %s\n", s.ln.Addr())
	for {
		accepting := &atomic.Bool{}
		accepting.Store(true)
		AcceptLoop(s.ln, s.engine, s.worldPID, s.table, s.cfg, accepting)

		running := &atomic.Bool{}
		running.Store(true)
		NewOrchestrator(s.engine, s.worldPID, s.table, s.cfg).Run(running)

		s.resetForNextRound()
	}
}

// resetForNextRound closes any sockets the tick phase didn't already drop
// and spawns a fresh WorldActor for the next round.
func (s *Server) resetForNextRound() {
	for _, id := range s.table.Ids() {
		if conn, ok := s.table.Get(id); ok {
			conn.Close()
		}
		s.table.Clear(id)
	}
	s.engine.Stop(s.worldPID)
	s.worldPID = s.engine.Spawn(game.NewWorldActorProps(s.cfg, game.DefaultSeed))
}

func (s *Server) Close() error {
	return s.ln.Close()
}
