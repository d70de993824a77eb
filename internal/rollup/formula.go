package rollup

import (
	"github.com/sahana-eden/budget/internal/models"
	"github.com/shopspring/decimal"
)

// Formulas are pure functions over rows that have their referenced
// rows preloaded. A reference that is nil was soft-deleted and
// contributes nothing.
//
// All arithmetic is exact, the results are rounded to the stored
// precision once at the end.

func count(n uint) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// ComputeKit calculates the totals of a kit from its lines.
func ComputeKit(lines []models.KitItem) (models.KitCosts, error) {
	unit, monthly, minute, megabyte := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero

	for _, l := range lines {
		if l.Item == nil {
			continue
		}

		q := count(l.Quantity)
		unit = unit.Add(q.Mul(l.Item.UnitCost))
		monthly = monthly.Add(q.Mul(l.Item.MonthlyCost))
		minute = minute.Add(q.Mul(l.Item.MinuteCost))
		megabyte = megabyte.Add(q.Mul(l.Item.MegabyteCost))
	}

	totals := models.KitCosts{
		TotalUnitCost:     models.RoundAmount(unit),
		TotalMonthlyCost:  models.RoundAmount(monthly),
		TotalMinuteCost:   models.RoundAmount(minute),
		TotalMegabyteCost: models.RoundAmount(megabyte),
	}

	if err := models.CheckRange(totals.TotalUnitCost, totals.TotalMonthlyCost, totals.TotalMinuteCost, totals.TotalMegabyteCost); err != nil {
		return models.KitCosts{}, err
	}

	return totals, nil
}

// consumptionCost is the monthly cost of a bundle line with the
// minute and megabyte costs folded in.
func consumptionCost(c models.Consumption, monthly, minute, megabyte decimal.Decimal) decimal.Decimal {
	q := count(c.Quantity)

	return q.Mul(monthly).
		Add(q.Mul(count(c.Minutes)).Mul(minute)).
		Add(q.Mul(count(c.Megabytes)).Mul(megabyte))
}

// ComputeBundle calculates the totals of a bundle from its kit and item lines.
//
// Kits contribute their stored totals, they are never recomputed here.
func ComputeBundle(kits []models.BundleKit, items []models.BundleItem) (models.BundleCosts, error) {
	unit, monthly := decimal.Zero, decimal.Zero

	for _, l := range kits {
		if l.Kit == nil {
			continue
		}

		unit = unit.Add(count(l.Quantity).Mul(l.Kit.TotalUnitCost))
		monthly = monthly.Add(consumptionCost(l.Consumption, l.Kit.TotalMonthlyCost, l.Kit.TotalMinuteCost, l.Kit.TotalMegabyteCost))
	}

	for _, l := range items {
		if l.Item == nil {
			continue
		}

		unit = unit.Add(count(l.Quantity).Mul(l.Item.UnitCost))
		monthly = monthly.Add(consumptionCost(l.Consumption, l.Item.MonthlyCost, l.Item.MinuteCost, l.Item.MegabyteCost))
	}

	totals := models.BundleCosts{
		TotalUnitCost:    models.RoundAmount(unit),
		TotalMonthlyCost: models.RoundAmount(monthly),
	}

	if err := models.CheckRange(totals.TotalUnitCost, totals.TotalMonthlyCost); err != nil {
		return models.BundleCosts{}, err
	}

	return totals, nil
}

// StaffLineCost returns the one-time and recurring cost of a staff line.
// A line without location has no subsistence and no hazard pay.
func StaffLineCost(l models.BudgetStaff) (onetime, recurring decimal.Decimal) {
	if l.Staff == nil {
		return decimal.Zero, decimal.Zero
	}

	q := count(l.Quantity)
	qm := q.Mul(count(l.Months))

	onetime = l.Staff.Travel.Mul(q)
	recurring = l.Staff.Salary.Mul(qm)

	if l.Location != nil {
		recurring = recurring.
			Add(l.Location.Subsistence.Mul(qm)).
			Add(l.Location.HazardPay.Mul(qm))
	}

	return onetime, recurring
}

// BundleLineCost returns the one-time and recurring cost of a bundle line.
func BundleLineCost(l models.BudgetBundle) (onetime, recurring decimal.Decimal) {
	if l.Bundle == nil {
		return decimal.Zero, decimal.Zero
	}

	q := count(l.Quantity)

	onetime = l.Bundle.TotalUnitCost.Mul(q)
	recurring = l.Bundle.TotalMonthlyCost.Mul(q).Mul(count(l.Months))

	return onetime, recurring
}

// ComputeBudget calculates the totals of a budget from its lines.
//
// Bundles contribute their stored totals, they are never recomputed here.
func ComputeBudget(staff []models.BudgetStaff, bundles []models.BudgetBundle) (models.BudgetCosts, error) {
	onetime, recurring := decimal.Zero, decimal.Zero

	for _, l := range staff {
		o, r := StaffLineCost(l)
		onetime = onetime.Add(o)
		recurring = recurring.Add(r)
	}

	for _, l := range bundles {
		o, r := BundleLineCost(l)
		onetime = onetime.Add(o)
		recurring = recurring.Add(r)
	}

	totals := models.BudgetCosts{
		TotalOnetimeCosts:   models.RoundAmount(onetime),
		TotalRecurringCosts: models.RoundAmount(recurring),
	}

	if err := models.CheckRange(totals.TotalOnetimeCosts, totals.TotalRecurringCosts); err != nil {
		return models.BudgetCosts{}, err
	}

	return totals, nil
}
