// Package agent ties the two spelunk phases into one episode driver,
// mirroring the classic diver contract: Seek until the target is found,
// then Scram — collect value and escape before the budget runs out.
//
// Diver carries no state of its own; each phase scopes its working
// state (the seek visited set included) to a single call, so one Diver
// can run any number of episodes.
//
// Errors are those of the underlying phases: seek.ErrTargetUnreachable,
// scram.ErrExitUnreachable, context errors, and wrapped MoveTo failures.
package agent

import (
	"github.com/katalvlaran/spelunk/scram"
	"github.com/katalvlaran/spelunk/seek"
)

// Diver is the two-phase episode driver.
type Diver struct{}

// New returns a ready Diver.
func New() *Diver {
	return &Diver{}
}

// Seek runs the exploration phase until the agent stands on the target.
// An agent already on the target returns immediately with no moves.
func (d *Diver) Seek(st seek.State, opts ...seek.Option) (*seek.Result, error) {
	return seek.Seek(st, opts...)
}

// Scram runs the collection phase and finishes on the exit: greedy
// value gathering while the budget safely allows, then the walk to the
// exit unless collection already handed off to it.
func (d *Diver) Scram(st scram.State, opts ...scram.Option) error {
	return scram.Scram(st, opts...)
}
