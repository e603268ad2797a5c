package analytics

import "sync"

// Memory is a Sink that keeps every event in memory.
type Memory struct {
	mu     sync.Mutex
	events []Event
}

// Track appends e.
func (m *Memory) Track(e Event) {
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
}

// Events returns a copy of the recorded events.
func (m *Memory) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Event, len(m.events))
	copy(out, m.events)
	return out
}

// Count returns how many events of type typ were recorded.
func (m *Memory) Count(typ EventType) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
