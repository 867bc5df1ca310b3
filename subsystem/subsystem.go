// Package subsystem brings library-level subsystems up in dependency order
// and tears them down in reverse.
package subsystem

import (
	"github.com/ushitora-anqou/sdltour/util"
)

type Subsystem struct {
	Name string
	Init func() error
	// Quit must be safe to call even when Init failed or never ran.
	Quit func()
}

type Stack struct {
	subsystems []Subsystem
	acquired   int
	released   bool
}

func NewStack(subsystems ...Subsystem) *Stack {
	return &Stack{subsystems: subsystems}
}

// Acquire initializes the subsystems in order and stops at the first failure.
func (s *Stack) Acquire() error {
	for _, sub := range s.subsystems[s.acquired:] {
		if sub.Init != nil {
			if err := sub.Init(); err != nil {
				return util.Fail("Error initialize "+sub.Name, err)
			}
		}
		s.acquired++
		util.Trace("subsystem: %s initialized", sub.Name)
	}
	return nil
}

// Names lists the subsystems in initialization order.
func (s *Stack) Names() []string {
	names := make([]string, 0, len(s.subsystems))
	for _, sub := range s.subsystems {
		names = append(names, sub.Name)
	}
	return names
}

// Acquired returns how many subsystems were initialized successfully.
func (s *Stack) Acquired() int {
	return s.acquired
}

// Release quits every subsystem exactly once, last one first, no matter how
// far Acquire got. Calling it again does nothing.
func (s *Stack) Release() {
	if s.released {
		return
	}
	s.released = true
	for i := len(s.subsystems) - 1; i >= 0; i-- {
		sub := s.subsystems[i]
		if sub.Quit != nil {
			sub.Quit()
		}
		util.Trace("subsystem: %s released", sub.Name)
	}
}
