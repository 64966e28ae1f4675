package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/avelk/marketmath/internal/screen"
	"github.com/avelk/marketmath/internal/ui/layout"
)

// PushScreenMsg requests the router to push a new screen onto the stack.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg requests the router to pop the current screen off the stack.
type PopScreenMsg struct{}

// defaultHints is the footer shown for screens that declare no hints of
// their own, i.e. the menu screens.
var defaultHints = []layout.KeyHint{
	{Key: "↑↓", Description: "Navigate"},
	{Key: "Enter", Description: "Select"},
	{Key: "Ctrl+C", Description: "Quit"},
}

// Router owns the screen stack and resolves everything the frame needs
// from the active screen: content, title, score, and footer hints. The
// home menu sits at the bottom; the quiz screen is pushed on top of it,
// so popping from the quiz always lands back on the menu with the session
// (and its score) intact.
type Router struct {
	stack []screen.Screen
}

// New creates a Router with the given bottom screen.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push adds a screen on top of the stack and calls its Init().
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop removes the top screen. The bottom screen is never popped.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Active returns the top screen on the stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// AtRoot reports whether only the bottom screen remains, in which case
// esc should not pop.
func (r *Router) AtRoot() bool {
	return len(r.stack) <= 1
}

// Title returns the active screen's header title.
func (r *Router) Title() string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.Title()
}

// Score returns the active screen's running score for the header, empty
// for screens that keep none.
func (r *Router) Score() string {
	if sp, ok := r.Active().(screen.ScoreProvider); ok {
		return sp.Score()
	}
	return ""
}

// KeyHints returns the active screen's footer hints, falling back to the
// menu navigation hints.
func (r *Router) KeyHints() []layout.KeyHint {
	if hp, ok := r.Active().(screen.KeyHintProvider); ok {
		return hp.KeyHints()
	}
	return defaultHints
}

// Update forwards a message to the active screen and handles navigation messages.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
