// Package bollywood is a minimal actor runtime: one mailbox goroutine per
// actor, messages delivered in order, no shared state between actors except
// what they choose to hand each other in messages.
package bollywood

// Actor processes messages handed to it by its mailbox, one at a time.
type Actor interface {
	Receive(ctx Context)
}

// Producer builds a fresh Actor instance. Engine.Spawn calls it exactly once,
// on the actor's own goroutine, so it is safe for a Producer to do
// non-trivial setup (allocate state, seed an RNG, build a grid).
type Producer func() Actor
