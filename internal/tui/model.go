// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuit/internal/keyboard"
	"github.com/verte-zerg/tuit/internal/model"
	"github.com/verte-zerg/tuit/internal/session"
	"github.com/verte-zerg/tuit/internal/sound"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	headingText     = "TYPE THIS:"
	chunkDoneText   = "Great job! Press any key for next set..."
	allDoneText     = "All sets completed! Press any key to exit."
	textTop         = 1
	noticeGap       = 1
	minLayoutMargin = 2
)

type flash struct {
	labels []string
	style  StyleID
}

type flashDoneMsg struct {
	seq int
}

// Model implements the Bubble Tea practice UI. It is the only caller of the
// session it wraps.
type Model struct {
	config  model.Config
	session *session.Session
	layout  *keyboard.Layout
	player  sound.Player
	styles  map[StyleID]lipgloss.Style
	keys    keyMap
	help    help.Model

	width  int
	height int

	flash    flash
	flashSeq int
	err      error
}

// NewModel constructs the practice model and lays out the keyboard for a
// default-sized window. The layout is rebuilt when the real size is known.
func NewModel(cfg model.Config, sess *session.Session, player sound.Player) (*Model, error) {
	if player == nil {
		player = sound.Silent{}
	}
	h := help.New()
	h.Styles = help.Styles{}
	m := &Model{
		config:  cfg,
		session: sess,
		player:  player,
		styles:  defaultStyles,
		keys:    defaultKeyMap(),
		help:    h,
	}
	if err := m.relayout(); err != nil {
		return nil, err
	}
	return m, nil
}

// Err returns the error that stopped the program, if any.
func (m *Model) Err() error {
	return m.err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if err := m.relayout(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, nil
	case flashDoneMsg:
		if msg.seq == m.flashSeq {
			m.flash = flash{}
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.session.State() {
	case session.StateAllComplete, session.StateAborted:
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Quit) {
		m.session.HandleKey(session.Cancel())
		return m, tea.Quit
	}
	var cmds []tea.Cmd
	for _, raw := range translateKey(msg) {
		out := m.session.HandleKey(raw)
		cmds = append(cmds, m.apply(out))
		if m.session.State() != session.StateAwaitingInput {
			break
		}
	}
	return m, tea.Batch(cmds...)
}

func translateKey(msg tea.KeyMsg) []session.RawKey {
	if msg.Alt {
		return []session.RawKey{session.Ignored()}
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		return []session.RawKey{session.Backspace()}
	case tea.KeySpace:
		return []session.RawKey{session.Printable(' ')}
	case tea.KeyRunes:
		keys := make([]session.RawKey, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, session.Printable(r))
		}
		return keys
	default:
		return []session.RawKey{session.Ignored()}
	}
}

func (m *Model) apply(out session.Outcome) tea.Cmd {
	switch out.Event {
	case session.EventCorrect, session.EventChunkComplete:
		return m.startFlash(out.Pressed, StyleCorrect, m.config.FeedbackDelay())
	case session.EventMismatch:
		m.player.Beep()
		return m.startFlash(out.Pressed, StyleMismatch, m.config.MismatchDelay())
	case session.EventNextChunk:
		m.flash = flash{}
		if err := m.relayout(); err != nil {
			m.err = err
			return tea.Quit
		}
		return nil
	case session.EventBackspace:
		m.flash = flash{}
		return nil
	case session.EventAborted:
		return tea.Quit
	default:
		return nil
	}
}

func (m *Model) startFlash(labels []string, style StyleID, d time.Duration) tea.Cmd {
	m.flashSeq++
	if d <= 0 || len(labels) == 0 {
		m.flash = flash{}
		return nil
	}
	m.flash = flash{labels: labels, style: style}
	seq := m.flashSeq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func (m *Model) size() (int, int) {
	w, h := m.width, m.height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// keyboardOrigin puts the keyboard at the bottom of the window, below the
// target and typed lines and any notice.
func (m *Model) keyboardOrigin() int {
	w, h := m.size()
	spans := wrapSpans([]rune(m.session.Target()), w)
	minOrigin := textTop + 2*len(spans) + noticeGap + 1 + minLayoutMargin
	origin := h - keyboard.LayoutHeight()
	if origin < minOrigin {
		origin = minOrigin
	}
	return origin
}

func (m *Model) relayout() error {
	origin := m.keyboardOrigin()
	if m.layout != nil && m.layout.Origin() == origin {
		return nil
	}
	layout, err := keyboard.Build(origin)
	if err != nil {
		return fmt.Errorf("failed to build keyboard layout: %w", err)
	}
	m.layout = layout
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	return m.paint().Render(m.styles)
}

func (m *Model) paint() *Canvas {
	w, h := m.size()
	if m.session.State() == session.StateAllComplete {
		c := NewCanvas(w, h)
		c.WriteLine(0, allDoneText, StyleNotice)
		return c
	}
	layoutBottom := 0
	if m.layout != nil {
		layoutBottom = m.layout.Origin() + m.layout.Height()
	}
	if layoutBottom > h {
		h = layoutBottom
	}
	c := NewCanvas(w, h)
	row := m.paintText(c)
	if m.session.State() == session.StateChunkComplete {
		c.WriteLine(row+noticeGap, chunkDoneText, StyleNotice)
	}
	m.paintKeyboard(c)
	if m.layout != nil {
		m.paintFooter(c, layoutBottom-1)
	}
	return c
}

// paintText draws the heading and the target with the typed text beneath it.
// It returns the first free row.
func (m *Model) paintText(c *Canvas) int {
	c.WriteLine(0, headingText, StyleHeading)
	progress := fmt.Sprintf("Set %d/%d", m.session.ChunkIndex()+1, m.session.ChunkCount())
	if pw := len(progress); pw < c.Width()-len(headingText) {
		c.WriteAt(0, c.Width()-pw, progress, StyleFooter)
	}

	target := []rune(m.session.Target())
	typed := []rune(m.session.Typed())
	cursor := -1
	if _, ok := m.session.Next(); ok {
		cursor = len(typed)
	}
	row := textTop
	for _, sp := range wrapSpans(target, c.Width()) {
		col := 0
		for i := sp.start; i < sp.end; i++ {
			style := StyleTarget
			if i == cursor {
				style = StyleCursor
			}
			col = c.WriteAt(row, col, string(target[i]), style)
		}
		if sp.start < len(typed) {
			end := sp.end
			if end > len(typed) {
				end = len(typed)
			}
			c.WriteAt(row+1, 0, string(typed[sp.start:end]), StyleTyped)
		}
		row += 2
	}
	return row
}

func (m *Model) paintKeyboard(c *Canvas) {
	if m.layout == nil {
		return
	}
	for _, b := range m.layout.Boxes() {
		c.DrawKeyBox(b.Row, b.Col, b.Label, b.Width, StyleDefault)
	}
	m.highlight(c, m.session.Required().Labels(), StyleRequired)
	m.highlight(c, m.session.Pressed(), StylePressed)
	m.highlight(c, m.flash.labels, m.flash.style)
}

func (m *Model) highlight(c *Canvas, labels []string, style StyleID) {
	for _, label := range labels {
		for _, b := range m.layout.Positions(label) {
			c.DrawKeyBox(b.Row, b.Col, b.Label, b.Width, style)
		}
	}
}

func (m *Model) paintFooter(c *Canvas, row int) {
	c.WriteLine(row, m.help.View(m.keys), StyleFooter)
}
