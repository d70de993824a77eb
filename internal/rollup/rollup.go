// Package rollup keeps the cached totals of kits, bundles and budgets
// consistent with the catalog.
//
// Every mutation runs in one database transaction. Before the transaction
// commits, the changes it made are propagated through the composite graph
// in the order items, kits, bundles, budgets. Readers therefore only ever
// see totals that match their definition.
package rollup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sahana-eden/budget/internal/config"
	"github.com/sahana-eden/budget/internal/models"
	"gorm.io/gorm"
)

// Kind names the type of an entity in changes and audit events.
type Kind string

const (
	KindItem         Kind = "item"
	KindStaff        Kind = "staff"
	KindLocation     Kind = "location"
	KindKit          Kind = "kit"
	KindBundle       Kind = "bundle"
	KindBudget       Kind = "budget"
	KindKitItem      Kind = "kit_item"
	KindBundleKit    Kind = "bundle_kit"
	KindBundleItem   Kind = "bundle_item"
	KindBudgetStaff  Kind = "budget_staff"
	KindBudgetBundle Kind = "budget_bundle"
)

// Change is a row whose modification affects cached totals.
type Change struct {
	Kind Kind
	ID   uint
}

// Engine implements all store operations and the propagation of changes.
type Engine struct {
	db       *gorm.DB
	settings config.Settings
	auditor  Auditor
	now      func() time.Time
}

type Option func(*Engine)

// WithSettings sets the settings. Without it, config.DefaultSettings() is used.
func WithSettings(s config.Settings) Option {
	return func(e *Engine) {
		e.settings = s
	}
}

// WithAuditor sets the receiver of audit events.
func WithAuditor(a Auditor) Option {
	return func(e *Engine) {
		e.auditor = a
	}
}

// WithClock sets the function used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New returns an Engine operating on db.
func New(db *gorm.DB, opts ...Option) *Engine {
	e := &Engine{
		db:       db,
		settings: config.DefaultSettings(),
		auditor:  LogAuditor{Logger: log.Logger},
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Settings returns the settings of the engine.
func (e *Engine) Settings() config.Settings {
	return e.settings
}

// work is the state of one mutation.
type work struct {
	db      *gorm.DB
	now     time.Time
	changes []Change
	events  []Event
}

// changed marks a row as changed so that everything depending
// on it is recomputed.
func (w *work) changed(kind Kind, id uint) {
	w.changes = append(w.changes, Change{Kind: kind, ID: id})
}

func (w *work) record(action Action, kind Kind, id uint) {
	w.events = append(w.events, Event{Action: action, Kind: kind, ID: id, At: w.now})
}

// mutate runs fn and the propagation of its changes in one transaction.
// Audit events are only emitted after the transaction committed.
func (e *Engine) mutate(ctx context.Context, fn func(w *work) error) error {
	var events []Event
	start := time.Now()

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := &work{db: tx, now: e.now().UTC()}

		if err := fn(w); err != nil {
			return err
		}

		c := newCascade(tx, w.now)
		if err := c.propagate(w.changes); err != nil {
			return err
		}

		if err := c.settle(e.settings.VerifyCascades); err != nil {
			return err
		}

		events = append(w.events, c.events()...)
		return nil
	})
	if err != nil {
		return wrap(err)
	}

	cascadeDuration.Observe(time.Since(start).Seconds())

	for _, event := range events {
		e.auditor.Audit(event)
	}

	return nil
}

// read runs fn in a read-only transaction so that it sees one consistent state.
func (e *Engine) read(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := e.db.WithContext(ctx).Transaction(fn)
	if err != nil {
		return wrap(err)
	}
	return nil
}

var known = []error{
	models.ErrStorageFailure,
	models.ErrResourceNotFound,
	models.ErrInvalidAmount,
	models.ErrInvalidQuantity,
	models.ErrCodeEmpty,
	models.ErrCodeTooLong,
	models.ErrInvalidCategory,
	models.ErrInvalidCostType,
	models.ErrCurrencyMismatch,
	models.ErrBackdatedLine,
	models.ErrInvalidContent,
	models.ErrUnknownField,
	models.ErrDuplicateCode,
	models.ErrDuplicateAssociation,
	models.ErrReferenceInUse,
	models.ErrUnknownReference,
	models.ErrRecomputeOverflow,
	models.ErrInvariantViolation,
	context.Canceled,
	context.DeadlineExceeded,
}

// wrap returns errors of the error taxonomy unchanged and
// reports everything else as a storage failure.
func wrap(err error) error {
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}

	log.Error().Err(err).Msg("unclassified error during rollup operation")
	return fmt.Errorf("%w: %v", models.ErrStorageFailure, err)
}
