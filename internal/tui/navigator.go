package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// Navigator adapts the running Bubble Tea program to the [nav.Navigator]
// capability: screen switches arrive as [NavigateTo] messages through the
// program's message queue, so they are safe to trigger from any goroutine.
//
// The zero state is "not ready". The navigator becomes ready when the
// program starts and stops being ready when it exits, so session-expiry
// redirects issued outside the TUI lifetime are skipped.
type Navigator struct {
	program atomic.Pointer[tea.Program]
	ready   atomic.Bool
}

func NewNavigator() *Navigator {
	return &Navigator{}
}

// IsReady reports whether the TUI program is running and can receive
// navigation messages.
func (n *Navigator) IsReady() bool {
	return n.ready.Load() && n.program.Load() != nil
}

// Navigate switches the active page. No-op when the program is not running.
func (n *Navigator) Navigate(screen string) {
	if !n.IsReady() {
		return
	}
	if p := n.program.Load(); p != nil {
		p.Send(NavigateTo{Page: screen})
	}
}

func (n *Navigator) attach(p *tea.Program) {
	n.program.Store(p)
}

func (n *Navigator) markReady() {
	n.ready.Store(true)
}

func (n *Navigator) markStopped() {
	n.ready.Store(false)
}
