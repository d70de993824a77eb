package rollup

import (
	"time"

	"github.com/rs/zerolog"
)

type Action string

const (
	ActionCreate     Action = "create"
	ActionUpdate     Action = "update"
	ActionDelete     Action = "delete"
	ActionSoftDelete Action = "soft_delete"
	ActionRestore    Action = "restore"
	ActionRecompute  Action = "recompute"
)

// Event describes one change that was committed.
type Event struct {
	Action Action    `json:"action"`
	Kind   Kind      `json:"kind"`
	ID     uint      `json:"id"`
	At     time.Time `json:"at"`
}

// Auditor receives the events of every committed mutation.
//
// Audit is called after the transaction committed, in the order
// the changes were made. Recompute events follow the events of the
// mutation that caused them.
type Auditor interface {
	Audit(Event)
}

// AuditorFunc adapts a function to the Auditor interface.
type AuditorFunc func(Event)

func (f AuditorFunc) Audit(e Event) {
	f(e)
}

// LogAuditor writes events to a zerolog logger.
type LogAuditor struct {
	Logger zerolog.Logger
}

func (l LogAuditor) Audit(e Event) {
	l.Logger.Info().
		Str("action", string(e.Action)).
		Str("kind", string(e.Kind)).
		Uint("id", e.ID).
		Time("at", e.At).
		Msg("audit")
}
