package session

import (
	"errors"
	"math"
	"sync"

	"gemini-chat/internal/model"
)

var ErrInvalidTemperature = errors.New("temperature must be within [0, 1]")

// Settings are the per-session knobs that shape the next model call.
type Settings struct {
	SystemInstruction string  `json:"system_instruction"`
	Temperature       float64 `json:"temperature"`
}

// Session is the conversation state of one interactive user: an append-only
// turn log bounded by a retention cap, plus the settings used for the next call.
// A cap <= 0 keeps every turn until Clear.
type Session struct {
	mu       sync.RWMutex
	turns    []model.Turn
	settings Settings
	cap      int

	// exchange serialises read-generate-append cycles on this session.
	exchange sync.Mutex
}

// New creates an empty Session.
func New(settings Settings, cap int) *Session {
	return &Session{settings: settings, cap: cap}
}

// Append adds turns and evicts the oldest turns beyond the cap.
func (s *Session) Append(turns ...model.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.turns = append(s.turns, turns...)
	if s.cap > 0 && len(s.turns) > s.cap {
		kept := make([]model.Turn, s.cap)
		copy(kept, s.turns[len(s.turns)-s.cap:])
		s.turns = kept
	}
}

// All returns a copy of the retained turns in chronological order.
func (s *Session) All() []model.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CopyTurns(s.turns)
}

// Len returns the number of retained turns.
func (s *Session) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.turns)
}

// Clear drops every turn. Settings are untouched.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
}

// Settings returns the current settings.
func (s *Session) Settings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetInstruction replaces the system instruction used from the next call on.
func (s *Session) SetInstruction(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.SystemInstruction = text
}

// SetTemperature replaces the sampling temperature used from the next call on.
func (s *Session) SetTemperature(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return ErrInvalidTemperature
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings.Temperature = v
	return nil
}

// Cap returns the retention cap; <= 0 means unbounded.
func (s *Session) Cap() int {
	return s.cap
}

// Exchange runs fn while holding the session's exchange lock, so that two
// concurrent senders on the same session never interleave their turns.
// fn must not call Exchange again.
func (s *Session) Exchange(fn func()) {
	s.exchange.Lock()
	defer s.exchange.Unlock()
	fn()
}
