package bollywood

import (
	"fmt"
	"runtime/debug"
	"sync/atomic"
)

const defaultMailboxSize = 1024

// process is the running instance of an actor: its mailbox, its goroutine,
// and the bookkeeping needed to stop it cleanly exactly once.
type process struct {
	engine  *Engine
	pid     *PID
	actor   Actor
	mailbox chan *messageEnvelope
	props   *Props
	stopCh  chan struct{}
	stopped atomic.Bool
}

func newProcess(engine *Engine, pid *PID, props *Props) *process {
	return &process{
		engine:  engine,
		pid:     pid,
		props:   props,
		mailbox: make(chan *messageEnvelope, defaultMailboxSize),
		stopCh:  make(chan struct{}),
	}
}

func (p *process) sendMessage(message interface{}, sender *PID) {
	if p.stopped.Load() {
		_, stopping := message.(Stopping)
		_, stopped := message.(Stopped)
		if !stopping && !stopped {
			return
		}
	}
	select {
	case p.mailbox <- &messageEnvelope{Sender: sender, Message: message}:
	default:
		fmt.Printf("bollywood: actor %s mailbox full, dropping message %T\n", p.pid.ID, message)
	}
}

func (p *process) run() {
	var stoppingInvoked bool

	defer func() {
		p.stopped.Store(true)
		defer func() {
			if r := recover(); r != nil {
				fmt.Printf("bollywood: actor %s panicked during Stopped handling: %v\n", p.pid.ID, r)
			}
			p.engine.remove(p.pid)
		}()
		if p.actor != nil {
			p.invokeReceive(Stopped{}, nil)
		}
	}()

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("bollywood: actor %s panicked: %v\n%s\n", p.pid.ID, r, debug.Stack())
			if p.stopped.CompareAndSwap(false, true) {
				p.closeStopCh()
				if p.actor != nil && !stoppingInvoked {
					p.invokeReceive(Stopping{}, nil)
					stoppingInvoked = true
				}
			}
		}
	}()

	p.actor = p.props.Produce()
	if p.actor == nil {
		panic(fmt.Sprintf("bollywood: actor %s producer returned nil", p.pid.ID))
	}
	p.invokeReceive(Started{}, nil)

	for {
		select {
		case <-p.stopCh:
			if p.stopped.CompareAndSwap(false, true) && !stoppingInvoked {
				p.invokeReceive(Stopping{}, nil)
				stoppingInvoked = true
			}
			return

		case envelope := <-p.mailbox:
			_, isStopping := envelope.Message.(Stopping)
			_, isStopped := envelope.Message.(Stopped)
			if p.stopped.Load() && !isStopping && !isStopped {
				continue
			}
			switch msg := envelope.Message.(type) {
			case Stopping:
				if p.stopped.CompareAndSwap(false, true) {
					if !stoppingInvoked {
						p.invokeReceive(msg, envelope.Sender)
						stoppingInvoked = true
					}
					p.closeStopCh()
				}
			case Stopped:
				// Should only ever be synthesized by run()'s own teardown.
			default:
				p.invokeReceive(envelope.Message, envelope.Sender)
			}
		}
	}
}

func (p *process) closeStopCh() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}

func (p *process) invokeReceive(msg interface{}, sender *PID) {
	ctx := &context{engine: p.engine, self: p.pid, sender: sender, message: msg}
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("bollywood: actor %s panicked in Receive(%T): %v\n%s\n", p.pid.ID, msg, r, debug.Stack())
			p.stopped.Store(true)
			p.closeStopCh()
		}
	}()
	p.actor.Receive(ctx)
}
