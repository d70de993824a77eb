package rollup

import (
	"context"
	"time"

	"github.com/sahana-eden/budget/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Snapshot is a denormalized, read-only copy of a budget for export.
//
// References to soft-deleted rows are nil, they contribute nothing to
// the line costs. The line costs therefore always add up to the budget totals.
type Snapshot struct {
	Budget   models.Budget `json:"budget"`                 // The budget with its totals
	Currency string        `json:"currency" example:"USD"` // Currency of all amounts
	Overlays Overlays      `json:"overlays"`               // Reporting overlays. They are not included in any total
	Staff    []StaffEntry  `json:"staff"`                  // Staff lines ordered by ID
	Bundles  []BundleEntry `json:"bundles"`                // Bundle lines ordered by ID
	TakenAt  time.Time     `json:"takenAt" example:"2026-10-19T09:12:44Z"`
}

// Overlays are the configured percentages that reporting adds on top of the totals.
type Overlays struct {
	ShippingPercent  decimal.Decimal `json:"shippingPercent" example:"15"`
	LogisticsPercent decimal.Decimal `json:"logisticsPercent" example:"0"`
	AdminPercent     decimal.Decimal `json:"adminPercent" example:"0"`
	IndirectPercent  decimal.Decimal `json:"indirectPercent" example:"7"`
}

// StaffEntry is a staff line with its staff type, its location and its cost.
type StaffEntry struct {
	models.BudgetStaff
	OnetimeCost   decimal.Decimal `json:"onetimeCost" example:"100"`    // Travel for all units
	RecurringCost decimal.Decimal `json:"recurringCost" example:"6180"` // Salary, subsistence and hazard pay for all units and months
}

// BundleEntry is a bundle line with the full contents of the bundle and its cost.
type BundleEntry struct {
	models.BudgetBundle
	Kits          []KitEntry          `json:"kits"`                       // Kit lines of the bundle
	Items         []models.BundleItem `json:"items"`                      // Item lines of the bundle
	OnetimeCost   decimal.Decimal     `json:"onetimeCost" example:"120"`  // Unit cost for all units
	RecurringCost decimal.Decimal     `json:"recurringCost" example:"36"` // Monthly cost for all units and months
}

// KitEntry is a kit line of a bundle with the items of the kit.
type KitEntry struct {
	models.BundleKit
	Items []models.KitItem `json:"items"` // Lines of the kit
}

// Snapshot reads a budget and everything it contains in one transaction.
func (e *Engine) Snapshot(ctx context.Context, budgetID uint) (Snapshot, error) {
	snapshot := Snapshot{
		Currency: e.settings.Currency,
		Overlays: Overlays{
			ShippingPercent:  e.settings.DefaultShippingPercent,
			LogisticsPercent: e.settings.DefaultLogisticsPercent,
			AdminPercent:     e.settings.DefaultAdminPercent,
			IndirectPercent:  e.settings.DefaultIndirectPercent,
		},
		Staff:   []StaffEntry{},
		Bundles: []BundleEntry{},
		TakenAt: e.now().UTC(),
	}

	err := e.read(ctx, func(tx *gorm.DB) error {
		if err := tx.First(&snapshot.Budget, budgetID).Error; err != nil {
			return err
		}

		var staff []models.BudgetStaff
		err := tx.Preload("Staff").Preload("Location").Where("budget_id = ?", budgetID).Order("id ASC").Find(&staff).Error
		if err != nil {
			return err
		}

		for _, line := range staff {
			onetime, recurring := StaffLineCost(line)
			snapshot.Staff = append(snapshot.Staff, StaffEntry{
				BudgetStaff:   line,
				OnetimeCost:   models.RoundAmount(onetime),
				RecurringCost: models.RoundAmount(recurring),
			})
		}

		var bundles []models.BudgetBundle
		err = tx.Preload("Bundle").Preload("Location").Where("budget_id = ?", budgetID).Order("id ASC").Find(&bundles).Error
		if err != nil {
			return err
		}

		kits := make(map[uint][]models.KitItem)
		for _, line := range bundles {
			entry, err := bundleEntry(tx, line, kits)
			if err != nil {
				return err
			}
			snapshot.Bundles = append(snapshot.Bundles, entry)
		}

		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}

	return snapshot, nil
}

// bundleEntry loads the contents of the bundle of a budget line. The lines
// of each kit are loaded once and kept in kits.
func bundleEntry(tx *gorm.DB, line models.BudgetBundle, kits map[uint][]models.KitItem) (BundleEntry, error) {
	onetime, recurring := BundleLineCost(line)
	entry := BundleEntry{
		BudgetBundle:  line,
		Kits:          []KitEntry{},
		Items:         []models.BundleItem{},
		OnetimeCost:   models.RoundAmount(onetime),
		RecurringCost: models.RoundAmount(recurring),
	}

	if line.Bundle == nil {
		return entry, nil
	}

	var bundleKits []models.BundleKit
	err := tx.Preload("Kit").Where("bundle_id = ?", line.BundleID).Order("id ASC").Find(&bundleKits).Error
	if err != nil {
		return BundleEntry{}, err
	}

	for _, bk := range bundleKits {
		items, ok := kits[bk.KitID]
		if !ok {
			items = []models.KitItem{}
			err := tx.Preload("Item").Where("kit_id = ?", bk.KitID).Order("id ASC").Find(&items).Error
			if err != nil {
				return BundleEntry{}, err
			}
			kits[bk.KitID] = items
		}

		entry.Kits = append(entry.Kits, KitEntry{BundleKit: bk, Items: items})
	}

	err = tx.Preload("Item").Where("bundle_id = ?", line.BundleID).Order("id ASC").Find(&entry.Items).Error
	if err != nil {
		return BundleEntry{}, err
	}

	return entry, nil
}
