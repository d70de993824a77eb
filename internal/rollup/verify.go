package rollup

import (
	"context"
	"fmt"

	"github.com/sahana-eden/budget/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Drift is a stored total that does not match its definition.
type Drift struct {
	Kind     Kind            `json:"kind" example:"kit"`            // Kind of the composite
	ID       uint            `json:"id" example:"3"`                // ID of the composite
	Field    string          `json:"field" example:"totalUnitCost"` // Name of the total
	Stored   decimal.Decimal `json:"stored" example:"30"`           // The stored value
	Expected decimal.Decimal `json:"expected" example:"60"`         // The value according to the definition
}

func (d Drift) String() string {
	return fmt.Sprintf("%s %d: %s is %s, expected %s", d.Kind, d.ID, d.Field, d.Stored, d.Expected)
}

type pair struct {
	field            string
	stored, expected decimal.Decimal
}

func compare(kind Kind, id uint, pairs ...pair) []Drift {
	var drifts []Drift
	for _, p := range pairs {
		if !p.stored.Equal(p.expected) {
			drifts = append(drifts, Drift{Kind: kind, ID: id, Field: p.field, Stored: p.stored, Expected: p.expected})
		}
	}

	return drifts
}

func checkKit(tx *gorm.DB, kit models.Kit) ([]Drift, error) {
	expected, err := kitTotals(tx, kit.ID)
	if err != nil {
		return nil, err
	}

	return compare(KindKit, kit.ID,
		pair{"totalUnitCost", kit.TotalUnitCost, expected.TotalUnitCost},
		pair{"totalMonthlyCost", kit.TotalMonthlyCost, expected.TotalMonthlyCost},
		pair{"totalMinuteCost", kit.TotalMinuteCost, expected.TotalMinuteCost},
		pair{"totalMegabyteCost", kit.TotalMegabyteCost, expected.TotalMegabyteCost},
	), nil
}

func checkBundle(tx *gorm.DB, bundle models.Bundle) ([]Drift, error) {
	expected, err := bundleTotals(tx, bundle.ID)
	if err != nil {
		return nil, err
	}

	return compare(KindBundle, bundle.ID,
		pair{"totalUnitCost", bundle.TotalUnitCost, expected.TotalUnitCost},
		pair{"totalMonthlyCost", bundle.TotalMonthlyCost, expected.TotalMonthlyCost},
	), nil
}

func checkBudget(tx *gorm.DB, budget models.Budget) ([]Drift, error) {
	expected, err := budgetTotals(tx, budget.ID)
	if err != nil {
		return nil, err
	}

	return compare(KindBudget, budget.ID,
		pair{"totalOnetimeCosts", budget.TotalOnetimeCosts, expected.TotalOnetimeCosts},
		pair{"totalRecurringCosts", budget.TotalRecurringCosts, expected.TotalRecurringCosts},
	), nil
}

// checkOne reads a single composite back from storage and compares
// it to its definition.
func checkOne(tx *gorm.DB, change Change) ([]Drift, error) {
	switch change.Kind {
	case KindKit:
		var kit models.Kit
		if err := tx.First(&kit, change.ID).Error; err != nil {
			return nil, err
		}
		return checkKit(tx, kit)
	case KindBundle:
		var bundle models.Bundle
		if err := tx.First(&bundle, change.ID).Error; err != nil {
			return nil, err
		}
		return checkBundle(tx, bundle)
	case KindBudget:
		var budget models.Budget
		if err := tx.First(&budget, change.ID).Error; err != nil {
			return nil, err
		}
		return checkBudget(tx, budget)
	}

	return nil, fmt.Errorf("%w: '%s' is not a composite", models.ErrInvariantViolation, change.Kind)
}

// Verify compares the stored totals of all live composites with their
// definition. It does not write anything.
//
// Kits are compared against their items, bundles against the stored totals
// of their kits and budgets against the stored totals of their bundles.
func (e *Engine) Verify(ctx context.Context) ([]Drift, error) {
	var drifts []Drift

	err := e.read(ctx, func(tx *gorm.DB) error {
		var kits []models.Kit
		if err := tx.Order("id ASC").Find(&kits).Error; err != nil {
			return err
		}
		for _, kit := range kits {
			d, err := checkKit(tx, kit)
			if err != nil {
				return err
			}
			drifts = append(drifts, d...)
		}

		var bundles []models.Bundle
		if err := tx.Order("id ASC").Find(&bundles).Error; err != nil {
			return err
		}
		for _, bundle := range bundles {
			d, err := checkBundle(tx, bundle)
			if err != nil {
				return err
			}
			drifts = append(drifts, d...)
		}

		var budgets []models.Budget
		if err := tx.Order("id ASC").Find(&budgets).Error; err != nil {
			return err
		}
		for _, budget := range budgets {
			d, err := checkBudget(tx, budget)
			if err != nil {
				return err
			}
			drifts = append(drifts, d...)
		}

		return nil
	})

	return drifts, err
}
