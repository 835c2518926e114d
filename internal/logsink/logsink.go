// Package logsink provides an in-memory sink for zerolog JSON output, keeping
// the most recent entries for display (e.g. in a status line).
package logsink

import (
	"encoding/json"
	"fmt"
	"sync"
)

// LogEntry is a single log entry.
type LogEntry = map[string]any

// DefaultCapacity is the capacity of sinks constructed with a non-positive
// capacity.
const DefaultCapacity = 256

// Sink is a bounded in-memory log writer. Once full, the oldest entries are
// dropped.
//
// A Sink is safe for concurrent use.
type Sink struct {
	mtx      sync.Mutex
	log      []LogEntry
	capacity int
}

// New returns a sink keeping at most capacity entries.
func New(capacity int) *Sink {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Sink{
		log:      make([]LogEntry, 0, capacity),
		capacity: capacity,
	}
}

// Write appends a log entry to the log.
func (s *Sink) Write(p []byte) (int, error) {
	entry := LogEntry{}
	err := json.Unmarshal(p, &entry)
	if err != nil {
		return 0, fmt.Errorf("could not unmarshal log entry (err:%s) (input:'%s')", err.Error(), string(p))
	}

	s.mtx.Lock()
	defer s.mtx.Unlock()
	if len(s.log) == s.capacity {
		copy(s.log, s.log[1:])
		s.log = s.log[:len(s.log)-1]
	}
	s.log = append(s.log, entry)
	return len(p), nil
}

// Get returns a copy of the log, oldest entry first.
func (s *Sink) Get() []LogEntry {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	result := make([]LogEntry, len(s.log))
	copy(result, s.log)
	return result
}

// Last returns the last (up to) n entries, oldest entry first.
func (s *Sink) Last(n int) []LogEntry {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if n > len(s.log) {
		n = len(s.log)
	}
	if n <= 0 {
		return nil
	}
	result := make([]LogEntry, n)
	copy(result, s.log[len(s.log)-n:])
	return result
}

// Len returns the number of entries kept.
func (s *Sink) Len() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return len(s.log)
}

// Summary renders an entry as a single line, e.g. "debug: paged forward".
func Summary(entry LogEntry) string {
	level, _ := entry["level"].(string)
	message, _ := entry["message"].(string)
	if level == "" {
		return message
	}
	return level + ": " + message
}

// LogReader allows reading access to a log.
type LogReader interface {
	Get() []LogEntry
	Last(n int) []LogEntry
}
