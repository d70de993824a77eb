package rollup

import (
	"context"

	"github.com/sahana-eden/budget/internal/models"
	"gorm.io/gorm"
)

// Refresh recomputes a budget together with every bundle and kit it
// deploys, in cascade order. Composites that depend on a repaired kit or
// bundle are recomputed, too.
//
// On a consistent database, Refresh writes nothing and emits no events.
func (e *Engine) Refresh(ctx context.Context, budgetID uint) (models.Budget, error) {
	var budget models.Budget

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.First(&budget, budgetID).Error; err != nil {
			return err
		}

		kits, bundles, err := reachable(w.db, budgetID)
		if err != nil {
			return err
		}

		for _, id := range kits {
			w.changed(KindKit, id)
		}

		for _, id := range bundles {
			w.changed(KindBundle, id)
		}

		w.changed(KindBudget, budgetID)
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return e.GetBudget(ctx, budgetID)
}

// RefreshAll recomputes every live composite.
func (e *Engine) RefreshAll(ctx context.Context) error {
	return e.mutate(ctx, func(w *work) error {
		steps := []struct {
			kind  Kind
			model any
		}{
			{KindKit, &models.Kit{}},
			{KindBundle, &models.Bundle{}},
			{KindBudget, &models.Budget{}},
		}

		for _, step := range steps {
			var ids []uint
			if err := w.db.Model(step.model).Order("id ASC").Pluck("id", &ids).Error; err != nil {
				return err
			}

			for _, id := range ids {
				w.changed(step.kind, id)
			}
		}

		return nil
	})
}

// reachable returns the IDs of the kits and bundles a budget deploys.
func reachable(tx *gorm.DB, budgetID uint) (kits, bundles []uint, err error) {
	err = tx.Model(&models.BudgetBundle{}).Distinct().Where("budget_id = ?", budgetID).Pluck("bundle_id", &bundles).Error
	if err != nil || len(bundles) == 0 {
		return nil, bundles, err
	}

	err = tx.Model(&models.BundleKit{}).Distinct().Where("bundle_id IN ?", bundles).Pluck("kit_id", &kits).Error
	return kits, bundles, err
}
