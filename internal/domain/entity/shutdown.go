package entity

import (
	"errors"
	"fmt"
)

// ShutdownPhase is the state of the exit confirmation flow.
type ShutdownPhase int

const (
	ShutdownIdle           ShutdownPhase = iota // No close in progress
	ShutdownConfirmPending                      // Prompt shown, waiting for the user
	ShutdownConfirmed                           // User agreed, close may proceed
)

// String implements fmt.Stringer.
func (p ShutdownPhase) String() string {
	switch p {
	case ShutdownIdle:
		return "idle"
	case ShutdownConfirmPending:
		return "confirm_pending"
	case ShutdownConfirmed:
		return "confirmed"
	}
	return fmt.Sprintf("ShutdownPhase(%d)", int(p))
}

// CloseDecision tells the host what to do with a close request.
type CloseDecision int

const (
	CloseCancel CloseDecision = iota // Keep running, the prompt is up
	CloseAllow                       // Let the close through
)

// ErrNoPendingClose is returned when a prompt action arrives while no
// confirmation is pending.
var ErrNoPendingClose = errors.New("no close confirmation pending")

// ShutdownGate intercepts close requests until the user confirms.
// The zero value is idle.
type ShutdownGate struct {
	phase ShutdownPhase
}

// Phase returns the current phase.
func (g *ShutdownGate) Phase() ShutdownPhase {
	return g.phase
}

// Confirmed reports whether termination may proceed.
func (g *ShutdownGate) Confirmed() bool {
	return g.phase == ShutdownConfirmed
}

// PromptOpen reports whether the confirmation prompt should be shown.
func (g *ShutdownGate) PromptOpen() bool {
	return g.phase == ShutdownConfirmPending
}

// OnCloseRequested handles a close request from the host.
func (g *ShutdownGate) OnCloseRequested() CloseDecision {
	if g.phase == ShutdownConfirmed {
		return CloseAllow
	}
	g.phase = ShutdownConfirmPending
	return CloseCancel
}

// Cancel dismisses the prompt and returns to idle.
func (g *ShutdownGate) Cancel() error {
	if g.phase != ShutdownConfirmPending {
		return ErrNoPendingClose
	}
	g.phase = ShutdownIdle
	return nil
}

// ConfirmDiscard confirms the close without saving.
func (g *ShutdownGate) ConfirmDiscard() error {
	if g.phase != ShutdownConfirmPending {
		return ErrNoPendingClose
	}
	g.phase = ShutdownConfirmed
	return nil
}

// ConfirmSave runs save and confirms the close if it succeeds.
// A failed save leaves the prompt pending.
func (g *ShutdownGate) ConfirmSave(save func() error) error {
	if g.phase != ShutdownConfirmPending {
		return ErrNoPendingClose
	}
	if save != nil {
		if err := save(); err != nil {
			return fmt.Errorf("save before exit: %w", err)
		}
	}
	g.phase = ShutdownConfirmed
	return nil
}
