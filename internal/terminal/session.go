// Package terminal is the shell side of the simulator: it feeds lines to a
// device, keeps the display transcript and acts on engine effects. It owns
// no switch state.
package terminal

import (
	"sync"

	"github.com/bondar-aleksandr/netdesk/internal/device"
)

type LineType string

const (
	LineIn  LineType = "in"
	LineOut LineType = "out"
)

// Line is one entry of the display log
type Line struct {
	Type LineType `json:"type"`
	Text string   `json:"text"`
}

// Session binds one device to one transcript for the life of a terminal
type Session struct {
	mu     sync.Mutex
	dev    *device.Device
	prompt string
	lines  []Line
}

// NewSession creates a session with its own device. banner lines are put
// in the transcript before any input.
func NewSession(dev *device.Device, banner ...string) *Session {
	s := &Session{
		dev:    dev,
		prompt: dev.Prompt(),
	}
	for _, b := range banner {
		s.lines = append(s.lines, Line{Type: LineOut, Text: b})
	}
	return s
}

// Submit runs one input line. The echo uses the prompt shown before the
// call, the displayed prompt is then replaced with the returned one.
func (s *Session) Submit(raw string) device.Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.prompt
	res := s.dev.Execute(raw)

	if res.HasEffect(device.EffectClearScreen) {
		s.lines = s.lines[:0]
	} else {
		s.lines = append(s.lines, Line{Type: LineIn, Text: before + " " + raw})
	}
	for _, l := range res.OutputLines {
		s.lines = append(s.lines, Line{Type: LineOut, Text: l})
	}
	s.prompt = res.Prompt
	return res
}

// Prompt returns the prompt to display for the next input
func (s *Session) Prompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prompt
}

// Lines returns a copy of the transcript
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Line(nil), s.lines...)
}

// Hostname reports the current hostname of the device behind the session
func (s *Session) Hostname() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dev.Hostname()
}
