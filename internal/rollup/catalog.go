package rollup

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahana-eden/budget/internal/models"
	"golang.org/x/text/currency"
	"gorm.io/gorm/clause"
)

var (
	itemFields     = []string{"Code", "Description", "Category", "CostType", "UnitCost", "MonthlyCost", "MinuteCost", "MegabyteCost", "Comments"}
	staffFields    = []string{"Name", "Grade", "Salary", "Travel", "Currency", "Comments"}
	locationFields = []string{"Code", "Description", "Subsistence", "HazardPay", "Comments"}
)

// ItemFilter selects items in ListItems.
type ItemFilter struct {
	Code           string              // Glob pattern for the code, "*" matches any sequence of characters
	Category       models.ItemCategory // Exact category
	CostType       models.CostType     // Exact cost type
	IncludeDeleted bool                // Also list soft-deleted items
}

// StaffFilter selects staff types in ListStaff.
type StaffFilter struct {
	Name           string // Glob pattern for the name
	Grade          string // Exact grade
	IncludeDeleted bool
}

// LocationFilter selects locations in ListLocations.
type LocationFilter struct {
	Code           string // Glob pattern for the code
	IncludeDeleted bool
}

// CreateItem creates an item.
func (e *Engine) CreateItem(ctx context.Context, item models.Item) (models.Item, error) {
	item.DefaultModel = models.DefaultModel{}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&item).Error; err != nil {
			return err
		}

		w.changed(KindItem, item.ID)
		w.record(ActionCreate, KindItem, item.ID)
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// UpdateItem updates the named fields of an item with the values from data.
// Without field names, all fields are updated.
//
// Every kit and bundle containing the item and every budget containing
// those bundles is recomputed.
func (e *Engine) UpdateItem(ctx context.Context, id uint, data models.Item, fields ...string) (models.Item, error) {
	var item models.Item

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Clauses(lockForUpdate).First(&item, id).Error; err != nil {
			return err
		}

		if err := assign(&item, data, itemFields, fields); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&item).Error; err != nil {
			return err
		}

		w.changed(KindItem, id)
		w.record(ActionUpdate, KindItem, id)
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// DeleteItem removes an item from storage. It fails with models.ErrReferenceInUse
// as long as a kit or bundle contains the item, soft-deleted or not.
func (e *Engine) DeleteItem(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var item models.Item
		if err := w.db.Unscoped().Clauses(lockForUpdate).First(&item, id).Error; err != nil {
			return err
		}

		err := restrict(w.db, KindItem, id,
			citation{&models.KitItem{}, "item_id", "kit lines"},
			citation{&models.BundleItem{}, "item_id", "bundle lines"},
		)
		if err != nil {
			return err
		}

		if err := w.db.Unscoped().Delete(&item).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindItem, id)
		return nil
	})
}

// SoftDeleteItem marks an item as deleted. A soft-deleted item contributes
// nothing to any total, all composites containing it are recomputed.
func (e *Engine) SoftDeleteItem(ctx context.Context, id uint) (models.Item, error) {
	var item models.Item

	err := e.mutate(ctx, func(w *work) (err error) {
		item, err = softDelete[models.Item](w, KindItem, id)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// RestoreItem reverts SoftDeleteItem.
func (e *Engine) RestoreItem(ctx context.Context, id uint) (models.Item, error) {
	var item models.Item

	err := e.mutate(ctx, func(w *work) (err error) {
		item, err = restore[models.Item](w, KindItem, id)
		return err
	})
	if err != nil {
		return models.Item{}, err
	}

	return item, nil
}

// GetItem returns an item, soft-deleted or not.
func (e *Engine) GetItem(ctx context.Context, id uint) (models.Item, error) {
	return get[models.Item](ctx, e.db.Unscoped(), id)
}

// GetItemByCode returns the live item with the code.
func (e *Engine) GetItemByCode(ctx context.Context, code string) (models.Item, error) {
	return getBy[models.Item](ctx, e.db, "code", strings.TrimSpace(code))
}

// ListItems returns all items matching the filter ordered by code.
func (e *Engine) ListItems(ctx context.Context, filter ItemFilter) ([]models.Item, error) {
	q := e.db.WithContext(ctx).Order("code ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	if filter.CostType != "" {
		q = q.Where("cost_type = ?", filter.CostType)
	}

	return list(q, filter.Code, func(i models.Item) string { return i.Code })
}

// normalizeCurrency defaults the currency of a staff type to the configured
// one and rejects every other currency.
func (e *Engine) normalizeCurrency(staff *models.Staff) error {
	staff.Currency = strings.ToUpper(strings.TrimSpace(staff.Currency))
	if staff.Currency == "" {
		staff.Currency = e.settings.Currency
	}

	if _, err := currency.ParseISO(staff.Currency); err != nil || staff.Currency != e.settings.Currency {
		return fmt.Errorf("%w: '%s' is used, but '%s' is configured", models.ErrCurrencyMismatch, staff.Currency, e.settings.Currency)
	}

	return nil
}

// CreateStaff creates a staff type.
func (e *Engine) CreateStaff(ctx context.Context, staff models.Staff) (models.Staff, error) {
	staff.DefaultModel = models.DefaultModel{}

	if err := e.normalizeCurrency(&staff); err != nil {
		return models.Staff{}, err
	}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&staff).Error; err != nil {
			return err
		}

		w.changed(KindStaff, staff.ID)
		w.record(ActionCreate, KindStaff, staff.ID)
		return nil
	})
	if err != nil {
		return models.Staff{}, err
	}

	return staff, nil
}

// UpdateStaff updates the named fields of a staff type. Every budget
// with a line for the staff type is recomputed.
func (e *Engine) UpdateStaff(ctx context.Context, id uint, data models.Staff, fields ...string) (models.Staff, error) {
	var staff models.Staff

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Clauses(lockForUpdate).First(&staff, id).Error; err != nil {
			return err
		}

		if err := assign(&staff, data, staffFields, fields); err != nil {
			return err
		}

		if err := e.normalizeCurrency(&staff); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&staff).Error; err != nil {
			return err
		}

		w.changed(KindStaff, id)
		w.record(ActionUpdate, KindStaff, id)
		return nil
	})
	if err != nil {
		return models.Staff{}, err
	}

	return staff, nil
}

// DeleteStaff removes a staff type from storage. It fails with
// models.ErrReferenceInUse while a budget line uses it.
func (e *Engine) DeleteStaff(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var staff models.Staff
		if err := w.db.Unscoped().Clauses(lockForUpdate).First(&staff, id).Error; err != nil {
			return err
		}

		err := restrict(w.db, KindStaff, id, citation{&models.BudgetStaff{}, "staff_id", "budget staff lines"})
		if err != nil {
			return err
		}

		if err := w.db.Unscoped().Delete(&staff).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindStaff, id)
		return nil
	})
}

// SoftDeleteStaff marks a staff type as deleted. Lines using it contribute nothing.
func (e *Engine) SoftDeleteStaff(ctx context.Context, id uint) (models.Staff, error) {
	var staff models.Staff

	err := e.mutate(ctx, func(w *work) (err error) {
		staff, err = softDelete[models.Staff](w, KindStaff, id)
		return err
	})
	if err != nil {
		return models.Staff{}, err
	}

	return staff, nil
}

// RestoreStaff reverts SoftDeleteStaff.
func (e *Engine) RestoreStaff(ctx context.Context, id uint) (models.Staff, error) {
	var staff models.Staff

	err := e.mutate(ctx, func(w *work) (err error) {
		staff, err = restore[models.Staff](w, KindStaff, id)
		return err
	})
	if err != nil {
		return models.Staff{}, err
	}

	return staff, nil
}

// GetStaff returns a staff type, soft-deleted or not.
func (e *Engine) GetStaff(ctx context.Context, id uint) (models.Staff, error) {
	return get[models.Staff](ctx, e.db.Unscoped(), id)
}

// GetStaffByName returns the live staff type with the name.
func (e *Engine) GetStaffByName(ctx context.Context, name string) (models.Staff, error) {
	return getBy[models.Staff](ctx, e.db, "name", strings.TrimSpace(name))
}

// ListStaff returns all staff types matching the filter ordered by name.
func (e *Engine) ListStaff(ctx context.Context, filter StaffFilter) ([]models.Staff, error) {
	q := e.db.WithContext(ctx).Order("name ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	if filter.Grade != "" {
		q = q.Where("grade = ?", filter.Grade)
	}

	return list(q, filter.Name, func(s models.Staff) string { return s.Name })
}

// CreateLocation creates a location.
func (e *Engine) CreateLocation(ctx context.Context, location models.Location) (models.Location, error) {
	location.DefaultModel = models.DefaultModel{}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&location).Error; err != nil {
			return err
		}

		w.changed(KindLocation, location.ID)
		w.record(ActionCreate, KindLocation, location.ID)
		return nil
	})
	if err != nil {
		return models.Location{}, err
	}

	return location, nil
}

// UpdateLocation updates the named fields of a location. Every budget
// with a line at the location is recomputed.
func (e *Engine) UpdateLocation(ctx context.Context, id uint, data models.Location, fields ...string) (models.Location, error) {
	var location models.Location

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Clauses(lockForUpdate).First(&location, id).Error; err != nil {
			return err
		}

		if err := assign(&location, data, locationFields, fields); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&location).Error; err != nil {
			return err
		}

		w.changed(KindLocation, id)
		w.record(ActionUpdate, KindLocation, id)
		return nil
	})
	if err != nil {
		return models.Location{}, err
	}

	return location, nil
}

// DeleteLocation removes a location from storage. It fails with
// models.ErrReferenceInUse while a budget line is placed there.
func (e *Engine) DeleteLocation(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var location models.Location
		if err := w.db.Unscoped().Clauses(lockForUpdate).First(&location, id).Error; err != nil {
			return err
		}

		err := restrict(w.db, KindLocation, id,
			citation{&models.BudgetStaff{}, "location_id", "budget staff lines"},
			citation{&models.BudgetBundle{}, "location_id", "budget bundle lines"},
		)
		if err != nil {
			return err
		}

		if err := w.db.Unscoped().Delete(&location).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindLocation, id)
		return nil
	})
}

// SoftDeleteLocation marks a location as deleted. Lines placed there
// are calculated without subsistence and hazard pay.
func (e *Engine) SoftDeleteLocation(ctx context.Context, id uint) (models.Location, error) {
	var location models.Location

	err := e.mutate(ctx, func(w *work) (err error) {
		location, err = softDelete[models.Location](w, KindLocation, id)
		return err
	})
	if err != nil {
		return models.Location{}, err
	}

	return location, nil
}

// RestoreLocation reverts SoftDeleteLocation.
func (e *Engine) RestoreLocation(ctx context.Context, id uint) (models.Location, error) {
	var location models.Location

	err := e.mutate(ctx, func(w *work) (err error) {
		location, err = restore[models.Location](w, KindLocation, id)
		return err
	})
	if err != nil {
		return models.Location{}, err
	}

	return location, nil
}

// GetLocation returns a location, soft-deleted or not.
func (e *Engine) GetLocation(ctx context.Context, id uint) (models.Location, error) {
	return get[models.Location](ctx, e.db.Unscoped(), id)
}

// GetLocationByCode returns the live location with the code.
func (e *Engine) GetLocationByCode(ctx context.Context, code string) (models.Location, error) {
	return getBy[models.Location](ctx, e.db, "code", strings.TrimSpace(code))
}

// ListLocations returns all locations matching the filter ordered by code.
func (e *Engine) ListLocations(ctx context.Context, filter LocationFilter) ([]models.Location, error) {
	q := e.db.WithContext(ctx).Order("code ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	return list(q, filter.Code, func(l models.Location) string { return l.Code })
}
