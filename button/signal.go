// Package button provides concrete buttons for a keygrid.
package button

// Signal is a list of tap handlers. The zero value is ready to use.
type Signal struct {
	next     int
	handlers []handler
}

type handler struct {
	id int
	fn func()
}

// Connect adds fn and returns a function that removes it. Calling the
// returned function more than once is harmless.
func (s *Signal) Connect(fn func()) (disconnect func()) {
	s.next++
	id := s.next
	s.handlers = append(s.handlers, handler{id: id, fn: fn})
	return func() {
		for i, h := range s.handlers {
			if h.id == id {
				s.handlers = append(s.handlers[:i], s.handlers[i+1:]...)
				return
			}
		}
	}
}

// Emit calls every connected handler in connection order. Handlers may
// disconnect themselves or others while running.
func (s *Signal) Emit() {
	handlers := make([]handler, len(s.handlers))
	copy(handlers, s.handlers)
	for _, h := range handlers {
		h.fn()
	}
}

// Len returns the number of connected handlers.
func (s *Signal) Len() int {
	return len(s.handlers)
}
