package rollup

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sahana-eden/budget/internal/models"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate takes an exclusive row lock. SQLite does not support
// row locks, there all transactions are serialized by the connection pool.
var lockForUpdate = clause.Locking{Strength: "UPDATE"}

type set map[uint]struct{}

func (s set) add(ids ...uint) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// sorted returns the IDs in ascending order, which is the order locks are taken in.
func (s set) sorted() []uint {
	ids := maps.Keys(s)
	slices.Sort(ids)
	return ids
}

// cascade is the state of one propagation. It lives for the duration
// of a single transaction.
type cascade struct {
	tx  *gorm.DB
	now time.Time

	// dirty holds all composites whose totals may be out of date
	dirty map[Change]struct{}

	// touched holds all composites that were recomputed, in recompute order
	touched []Change

	// updated holds all composites whose totals changed
	updated []Change
}

func newCascade(tx *gorm.DB, now time.Time) *cascade {
	return &cascade{
		tx:    tx,
		now:   now,
		dirty: make(map[Change]struct{}),
	}
}

// propagate recomputes every composite affected by the changes.
//
// Kits containing changed items are recomputed first, then bundles containing
// changed kits or items, then budgets containing changed bundles, staff or
// locations. Composites that changed themselves are recomputed on their level.
func (c *cascade) propagate(changes []Change) error {
	items, staff, locations := set{}, set{}, set{}
	kits, bundles, budgets := set{}, set{}, set{}

	for _, change := range changes {
		switch change.Kind {
		case KindItem:
			items.add(change.ID)
		case KindStaff:
			staff.add(change.ID)
		case KindLocation:
			locations.add(change.ID)
		case KindKit:
			kits.add(change.ID)
		case KindBundle:
			bundles.add(change.ID)
		case KindBudget:
			budgets.add(change.ID)
		default:
			return fmt.Errorf("%w: changes of kind '%s' can not be propagated", models.ErrInvariantViolation, change.Kind)
		}
	}

	steps := []struct {
		target set
		model  any
		column string
		by     string
		source set
	}{
		{kits, &models.KitItem{}, "kit_id", "item_id", items},
		{bundles, &models.BundleKit{}, "bundle_id", "kit_id", kits},
		{bundles, &models.BundleItem{}, "bundle_id", "item_id", items},
		{budgets, &models.BudgetBundle{}, "budget_id", "bundle_id", bundles},
		{budgets, &models.BudgetStaff{}, "budget_id", "staff_id", staff},
		{budgets, &models.BudgetStaff{}, "budget_id", "location_id", locations},
		{budgets, &models.BudgetBundle{}, "budget_id", "location_id", locations},
	}

	for _, step := range steps {
		ids, err := c.related(step.model, step.column, step.by, step.source.sorted())
		if err != nil {
			return err
		}
		step.target.add(ids...)
	}

	return c.run(kits.sorted(), bundles.sorted(), budgets.sorted())
}

// related returns the distinct values of column for all rows of model where by is one of ids.
func (c *cascade) related(model any, column, by string, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var result []uint
	err := c.tx.Model(model).Distinct().Where(fmt.Sprintf("%s IN ?", by), ids).Pluck(column, &result).Error
	return result, err
}

// run recomputes the given composites level by level, each level in ascending ID order.
func (c *cascade) run(kits, bundles, budgets []uint) error {
	for _, id := range kits {
		c.dirty[Change{KindKit, id}] = struct{}{}
	}
	for _, id := range bundles {
		c.dirty[Change{KindBundle, id}] = struct{}{}
	}
	for _, id := range budgets {
		c.dirty[Change{KindBudget, id}] = struct{}{}
	}

	for _, id := range kits {
		if err := c.recomputeKit(id); err != nil {
			return err
		}
	}

	for _, id := range bundles {
		if err := c.recomputeBundle(id); err != nil {
			return err
		}
	}

	for _, id := range budgets {
		if err := c.recomputeBudget(id); err != nil {
			return err
		}
	}

	return nil
}

// lock loads and locks a live composite. Soft-deleted composites are not
// recomputed, for them lock reports false.
func (c *cascade) lock(dest any, id uint) (bool, error) {
	err := c.tx.Clauses(lockForUpdate).First(dest, id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return false, nil
	}

	return err == nil, err
}

func (c *cascade) clean(kind Kind, id uint, recomputed, changed bool) {
	change := Change{Kind: kind, ID: id}
	delete(c.dirty, change)

	if recomputed {
		recomputes.WithLabelValues(string(kind)).Inc()
		c.touched = append(c.touched, change)
	}

	if changed {
		c.updated = append(c.updated, change)
	}
}

func (c *cascade) recomputeKit(id uint) error {
	var kit models.Kit
	found, err := c.lock(&kit, id)
	if err != nil {
		return err
	}

	if !found {
		c.clean(KindKit, id, false, false)
		return nil
	}

	totals, err := kitTotals(c.tx, id)
	if err != nil {
		return err
	}

	changed := !totals.Equal(kit.KitCosts)
	if changed {
		err = c.tx.Model(&kit).UpdateColumns(map[string]any{
			"total_unit_cost":     totals.TotalUnitCost,
			"total_monthly_cost":  totals.TotalMonthlyCost,
			"total_minute_cost":   totals.TotalMinuteCost,
			"total_megabyte_cost": totals.TotalMegabyteCost,
			"updated_at":          c.now,
		}).Error
		if err != nil {
			return err
		}
	}

	c.clean(KindKit, id, true, changed)
	return nil
}

func (c *cascade) recomputeBundle(id uint) error {
	var bundle models.Bundle
	found, err := c.lock(&bundle, id)
	if err != nil {
		return err
	}

	if !found {
		c.clean(KindBundle, id, false, false)
		return nil
	}

	totals, err := bundleTotals(c.tx, id)
	if err != nil {
		return err
	}

	changed := !totals.Equal(bundle.BundleCosts)
	if changed {
		err = c.tx.Model(&bundle).UpdateColumns(map[string]any{
			"total_unit_cost":    totals.TotalUnitCost,
			"total_monthly_cost": totals.TotalMonthlyCost,
			"updated_at":         c.now,
		}).Error
		if err != nil {
			return err
		}
	}

	c.clean(KindBundle, id, true, changed)
	return nil
}

func (c *cascade) recomputeBudget(id uint) error {
	var budget models.Budget
	found, err := c.lock(&budget, id)
	if err != nil {
		return err
	}

	if !found {
		c.clean(KindBudget, id, false, false)
		return nil
	}

	totals, err := budgetTotals(c.tx, id)
	if err != nil {
		return err
	}

	changed := !totals.Equal(budget.BudgetCosts)
	if changed {
		err = c.tx.Model(&budget).UpdateColumns(map[string]any{
			"total_onetime_costs":   totals.TotalOnetimeCosts,
			"total_recurring_costs": totals.TotalRecurringCosts,
			"updated_at":            c.now,
		}).Error
		if err != nil {
			return err
		}
	}

	c.clean(KindBudget, id, true, changed)
	return nil
}

// settle verifies that the cascade left every composite clean. If verify is set,
// every recomputed composite is read back and compared to its definition.
func (c *cascade) settle(verify bool) error {
	if len(c.dirty) > 0 {
		for change := range c.dirty {
			log.Error().Str("kind", string(change.Kind)).Uint("id", change.ID).Msg("composite left dirty after cascade")
		}
		return fmt.Errorf("%w: %d composites were not recomputed", models.ErrInvariantViolation, len(c.dirty))
	}

	if !verify {
		return nil
	}

	for _, change := range c.touched {
		drifts, err := checkOne(c.tx, change)
		if err != nil {
			return err
		}

		if len(drifts) > 0 {
			for _, d := range drifts {
				log.Error().
					Str("kind", string(d.Kind)).
					Uint("id", d.ID).
					Str("field", d.Field).
					Str("stored", d.Stored.String()).
					Str("expected", d.Expected.String()).
					Msg("composite total does not match its definition")
			}
			return fmt.Errorf("%w: %s %d", models.ErrInvariantViolation, change.Kind, change.ID)
		}
	}

	return nil
}

// events returns an audit event for every composite whose totals changed.
func (c *cascade) events() []Event {
	events := make([]Event, 0, len(c.updated))
	for _, change := range c.updated {
		events = append(events, Event{Action: ActionRecompute, Kind: change.Kind, ID: change.ID, At: c.now})
	}

	return events
}

// kitTotals loads the lines of a kit and computes its totals.
func kitTotals(tx *gorm.DB, id uint) (models.KitCosts, error) {
	var lines []models.KitItem
	err := tx.Preload("Item").Where("kit_id = ?", id).Find(&lines).Error
	if err != nil {
		return models.KitCosts{}, err
	}

	return ComputeKit(lines)
}

// bundleTotals loads the lines of a bundle and computes its totals.
func bundleTotals(tx *gorm.DB, id uint) (models.BundleCosts, error) {
	var kits []models.BundleKit
	err := tx.Preload("Kit").Where("bundle_id = ?", id).Find(&kits).Error
	if err != nil {
		return models.BundleCosts{}, err
	}

	var items []models.BundleItem
	err = tx.Preload("Item").Where("bundle_id = ?", id).Find(&items).Error
	if err != nil {
		return models.BundleCosts{}, err
	}

	return ComputeBundle(kits, items)
}

// budgetTotals loads the lines of a budget and computes its totals.
func budgetTotals(tx *gorm.DB, id uint) (models.BudgetCosts, error) {
	var staff []models.BudgetStaff
	err := tx.Preload("Staff").Preload("Location").Where("budget_id = ?", id).Find(&staff).Error
	if err != nil {
		return models.BudgetCosts{}, err
	}

	var bundles []models.BudgetBundle
	err = tx.Preload("Bundle").Preload("Location").Where("budget_id = ?", id).Find(&bundles).Error
	if err != nil {
		return models.BudgetCosts{}, err
	}

	return ComputeBudget(staff, bundles)
}
