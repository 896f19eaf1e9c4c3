package surface

import (
	"errors"
	"fmt"
)

// ErrUnregisteredReuseID is returned when a cell is dequeued for a reuse
// identifier that has no registered factory.
var ErrUnregisteredReuseID = errors.New("surface: no cell registered for reuse identifier")

// pool keeps recycled cells per reuse identifier. Free lists are LIFO so the
// most recently recycled container is handed out first.
type pool struct {
	factories map[string]func() Cell
	free      map[string][]Cell
	created   map[string]int
}

func newPool() *pool {
	return &pool{
		factories: make(map[string]func() Cell),
		free:      make(map[string][]Cell),
		created:   make(map[string]int),
	}
}

func (p *pool) register(reuseID string, factory func() Cell) {
	p.factories[reuseID] = factory
	// Cells made by a previous factory no longer match the role.
	delete(p.free, reuseID)
}

func (p *pool) dequeue(reuseID string) (Cell, error) {
	if free := p.free[reuseID]; len(free) > 0 {
		c := free[len(free)-1]
		p.free[reuseID] = free[:len(free)-1]
		return c, nil
	}

	factory, ok := p.factories[reuseID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnregisteredReuseID, reuseID)
	}
	c := factory()
	if c == nil {
		return nil, fmt.Errorf("surface: factory for %q returned nil cell", reuseID)
	}
	p.created[reuseID]++
	return c, nil
}

func (p *pool) enqueue(reuseID string, c Cell) {
	c.PrepareForReuse()
	p.free[reuseID] = append(p.free[reuseID], c)
}
