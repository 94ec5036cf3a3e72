// Package session drives a practice run through a phrase, one chunk and one
// character at a time.
package session

import (
	"fmt"

	"github.com/verte-zerg/tuit/internal/keyboard"
)

// State is the position of a Session in its lifecycle.
type State int

const (
	// StatePresenting shows a new chunk. It moves to StateAwaitingInput at once.
	StatePresenting State = iota
	// StateAwaitingInput waits for the next character of the target.
	StateAwaitingInput
	// StateChunkComplete waits for any key before the next chunk.
	StateChunkComplete
	// StateAllComplete means every chunk was typed.
	StateAllComplete
	// StateAborted means the user quit.
	StateAborted
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateChunkComplete:
		return "chunk-complete"
	case StateAllComplete:
		return "all-complete"
	case StateAborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further input is processed.
func (s State) Terminal() bool {
	return s == StateAllComplete || s == StateAborted
}

// Event tells the host what a key did so it can render feedback.
type Event int

const (
	// EventNone means nothing changed.
	EventNone Event = iota
	// EventPressed means keys are held but do not form a character yet.
	EventPressed
	// EventCorrect means the resolved character matched and was appended.
	EventCorrect
	// EventMismatch means the resolved character did not match the target.
	EventMismatch
	// EventBackspace means the last typed character was removed.
	EventBackspace
	// EventChunkComplete means the last character of the chunk was typed.
	EventChunkComplete
	// EventNextChunk means a new chunk is being presented.
	EventNextChunk
	// EventAllComplete means the final chunk was acknowledged.
	EventAllComplete
	// EventAborted means the user quit.
	EventAborted
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventPressed:
		return "pressed"
	case EventCorrect:
		return "correct"
	case EventMismatch:
		return "mismatch"
	case EventBackspace:
		return "backspace"
	case EventChunkComplete:
		return "chunk-complete"
	case EventNextChunk:
		return "next-chunk"
	case EventAllComplete:
		return "all-complete"
	case EventAborted:
		return "aborted"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// Outcome describes the effect of one key event.
type Outcome struct {
	Event Event
	// Pressed holds the keys that were down when the event was resolved.
	Pressed []string
	// Resolved is the produced character for EventCorrect and EventMismatch.
	Resolved rune
	// Required is what the next character needs after the event.
	Required keyboard.Requirement
}

// Options configures a Session.
type Options struct {
	ChunkSize int
	Table     *keyboard.ComboTable
}

// Session is the practice state machine. It is not safe for concurrent use;
// the host input loop is its only caller.
type Session struct {
	table   *keyboard.ComboTable
	chunks  []Chunk
	index   int
	target  []rune
	typed   []rune
	pressed *keyboard.PressedSet
	state   State
}

// New starts a session over words. An empty phrase is complete immediately.
func New(words []string, opts Options) *Session {
	table := opts.Table
	if table == nil {
		table = keyboard.DefaultTable()
	}
	s := &Session{
		table:   table,
		chunks:  ChunkWords(words, opts.ChunkSize),
		pressed: keyboard.NewPressedSet(),
	}
	if len(s.chunks) == 0 {
		s.state = StateAllComplete
		return s
	}
	s.present(0)
	return s
}

func (s *Session) present(i int) {
	s.state = StatePresenting
	s.index = i
	s.target = []rune(s.chunks[i].Text())
	s.typed = s.typed[:0]
	s.pressed.Clear()
	s.state = StateAwaitingInput
}

// HandleKey applies one raw key event.
func (s *Session) HandleKey(key RawKey) Outcome {
	if s.state.Terminal() {
		return Outcome{Event: EventNone}
	}
	if key.Kind == KeyCancel {
		s.pressed.Clear()
		s.state = StateAborted
		return Outcome{Event: EventAborted}
	}
	if s.state == StateChunkComplete {
		return s.advance()
	}
	switch key.Kind {
	case KeyBackspace:
		return s.backspace()
	case KeyPrintable:
		return s.Hold(keyboard.PressLabels(key.Rune)...)
	default:
		return Outcome{Event: EventNone, Required: s.Required()}
	}
}

// Hold adds labels to the held keys and resolves them against the next target
// character. Hosts that see individual key-down events call it directly.
func (s *Session) Hold(labels ...string) Outcome {
	if s.state != StateAwaitingInput {
		return Outcome{Event: EventNone}
	}
	for _, l := range labels {
		s.pressed.Add(l)
	}
	return s.resolve()
}

// Release lifts a held key without resolving.
func (s *Session) Release(label string) {
	s.pressed.Remove(label)
}

func (s *Session) resolve() Outcome {
	want := s.target[len(s.typed)]
	pressed := s.pressed.Labels()
	got, ok := keyboard.Resolve(s.table, s.pressed)
	if !ok {
		return Outcome{Event: EventPressed, Pressed: pressed, Required: s.Required()}
	}
	s.pressed.Clear()
	if got != want {
		return Outcome{Event: EventMismatch, Pressed: pressed, Resolved: got, Required: s.Required()}
	}
	s.typed = append(s.typed, got)
	if len(s.typed) == len(s.target) {
		s.state = StateChunkComplete
		return Outcome{Event: EventChunkComplete, Pressed: pressed, Resolved: got}
	}
	return Outcome{Event: EventCorrect, Pressed: pressed, Resolved: got, Required: s.Required()}
}

func (s *Session) backspace() Outcome {
	s.pressed.Clear()
	if len(s.typed) > 0 {
		s.typed = s.typed[:len(s.typed)-1]
	}
	return Outcome{Event: EventBackspace, Required: s.Required()}
}

func (s *Session) advance() Outcome {
	if s.index+1 >= len(s.chunks) {
		s.state = StateAllComplete
		return Outcome{Event: EventAllComplete}
	}
	s.present(s.index + 1)
	return Outcome{Event: EventNextChunk, Required: s.Required()}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// ChunkIndex returns the zero-based index of the current chunk.
func (s *Session) ChunkIndex() int {
	return s.index
}

// ChunkCount returns the number of chunks in the phrase.
func (s *Session) ChunkCount() int {
	return len(s.chunks)
}

// Target returns the current chunk's target string.
func (s *Session) Target() string {
	return string(s.target)
}

// Typed returns the correctly typed prefix of the target.
func (s *Session) Typed() string {
	return string(s.typed)
}

// Position returns the index of the next character to type.
func (s *Session) Position() int {
	return len(s.typed)
}

// Next returns the character to type next. It returns false outside
// StateAwaitingInput.
func (s *Session) Next() (rune, bool) {
	if s.state != StateAwaitingInput || len(s.typed) >= len(s.target) {
		return 0, false
	}
	return s.target[len(s.typed)], true
}

// Required returns the keys for the next character, or the zero Requirement
// when nothing is awaited.
func (s *Session) Required() keyboard.Requirement {
	next, ok := s.Next()
	if !ok {
		return keyboard.Requirement{}
	}
	return keyboard.RequiredKeys(s.table, next)
}

// Pressed returns the keys held toward the next character.
func (s *Session) Pressed() []string {
	return s.pressed.Labels()
}
