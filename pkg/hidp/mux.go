package hidp

import "fmt"

// Handler consumes one decoded message.
type Handler interface {
    Handle(m Message) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(m Message) error

func (f HandlerFunc) Handle(m Message) error { return f(m) }

// Mux dispatches decoded messages to per-type handlers. It holds no
// session state and enforces no sequencing; registration happens before
// use, after which Dispatch is safe for concurrent callers.
type Mux struct {
    handlers map[MessageType]Handler
}

// NewMux returns an empty Mux.
func NewMux() *Mux {
    return &Mux{handlers: make(map[MessageType]Handler)}
}

// Handle registers h for message type t, replacing any previous handler.
func (mx *Mux) Handle(t MessageType, h Handler) { mx.handlers[t] = h }

// HandleFunc registers f for message type t.
func (mx *Mux) HandleFunc(t MessageType, f func(m Message) error) {
    mx.Handle(t, HandlerFunc(f))
}

// Dispatch routes m to the handler registered for its type. Messages
// with no registered handler are an error for the caller to act on,
// typically by replying with a Handshake carrying
// ResultErrUnsupportedRequest.
func (mx *Mux) Dispatch(m Message) error {
    h, ok := mx.handlers[m.MessageType()]
    if !ok {
        return fmt.Errorf("hidp: no handler for %v", m.MessageType())
    }
    return h.Handle(m)
}
