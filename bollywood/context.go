package bollywood

// Context is handed to an Actor's Receive for the duration of one message.
type Context interface {
	// Engine returns the engine running this actor.
	Engine() *Engine
	// Self returns this actor's own PID.
	Self() *PID
	// Sender returns the PID of whoever sent the current message, if any.
	Sender() *PID
	// Message returns the message currently being processed.
	Message() interface{}
}

type context struct {
	engine  *Engine
	self    *PID
	sender  *PID
	message interface{}
}

func (c *context) Engine() *Engine      { return c.engine }
func (c *context) Self() *PID           { return c.self }
func (c *context) Sender() *PID         { return c.sender }
func (c *context) Message() interface{} { return c.message }
