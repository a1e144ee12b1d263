package bollywood

// Props configures how an actor is built. Kept as its own type, rather than
// passing a bare Producer to Spawn, so mailbox sizing or supervision options
// have somewhere to live later without changing Spawn's signature.
type Props struct {
	producer Producer
}

// NewProps wraps a Producer for Engine.Spawn.
func NewProps(producer Producer) *Props {
	if producer == nil {
		panic("bollywood: producer cannot be nil")
	}
	return &Props{producer: producer}
}

func (p *Props) Produce() Actor {
	return p.producer()
}
