package rollup

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahana-eden/budget/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var kitFields = []string{"Code", "Description", "Comments"}

type KitFilter struct {
	Code           string // Glob pattern for the code
	IncludeDeleted bool
}

// KitLine is one entry of the contents of a kit.
type KitLine struct {
	ItemID   uint `json:"itemId" example:"4"`   // ID of the item
	Quantity uint `json:"quantity" example:"3"` // Number of units
}

// KitItemEdit changes the quantity of an item in a kit. Items that the kit
// does not contain yet are added. With Delete set, the item is removed.
type KitItemEdit struct {
	ItemID   uint `json:"itemId" example:"4"`     // ID of the item
	Quantity uint `json:"quantity" example:"5"`   // New number of units, ignored when deleting
	Delete   bool `json:"delete" example:"false"` // Remove the item from the kit
}

// lockKit loads and locks a live kit.
func lockKit(tx *gorm.DB, id uint) (models.Kit, error) {
	var kit models.Kit
	err := tx.Clauses(lockForUpdate).First(&kit, id).Error
	return kit, err
}

// CreateKit creates an empty kit. All totals of a new kit are zero.
func (e *Engine) CreateKit(ctx context.Context, kit models.Kit) (models.Kit, error) {
	kit.DefaultModel = models.DefaultModel{}
	kit.KitCosts = models.KitCosts{}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&kit).Error; err != nil {
			return err
		}

		w.record(ActionCreate, KindKit, kit.ID)
		return nil
	})
	if err != nil {
		return models.Kit{}, err
	}

	return kit, nil
}

// UpdateKit updates the named fields of a kit. The totals can not be updated.
func (e *Engine) UpdateKit(ctx context.Context, id uint, data models.Kit, fields ...string) (models.Kit, error) {
	var kit models.Kit

	err := e.mutate(ctx, func(w *work) (err error) {
		kit, err = lockKit(w.db, id)
		if err != nil {
			return err
		}

		if err := assign(&kit, data, kitFields, fields); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&kit).Error; err != nil {
			return err
		}

		w.record(ActionUpdate, KindKit, id)
		return nil
	})
	if err != nil {
		return models.Kit{}, err
	}

	return kit, nil
}

// DeleteKit deletes a kit. It fails with models.ErrReferenceInUse
// while any bundle contains the kit. The lines of the kit are removed,
// the kit itself is soft-deleted so that its code can be used again.
func (e *Engine) DeleteKit(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		kit, err := lockKit(w.db, id)
		if err != nil {
			return err
		}

		err = restrict(w.db, KindKit, id, citation{&models.BundleKit{}, "kit_id", "bundle lines"})
		if err != nil {
			return err
		}

		if err := w.db.Where("kit_id = ?", id).Delete(&models.KitItem{}).Error; err != nil {
			return err
		}

		if err := w.db.Delete(&kit).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindKit, id)
		return nil
	})
}

// GetKit returns a kit, soft-deleted or not.
func (e *Engine) GetKit(ctx context.Context, id uint) (models.Kit, error) {
	return get[models.Kit](ctx, e.db.Unscoped(), id)
}

// GetKitByCode returns the live kit with the code.
func (e *Engine) GetKitByCode(ctx context.Context, code string) (models.Kit, error) {
	return getBy[models.Kit](ctx, e.db, "code", strings.TrimSpace(code))
}

// ListKits returns all kits matching the filter ordered by code.
func (e *Engine) ListKits(ctx context.Context, filter KitFilter) ([]models.Kit, error) {
	q := e.db.WithContext(ctx).Order("code ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	return list(q, filter.Code, func(k models.Kit) string { return k.Code })
}

// KitTotals returns the cached totals of a kit.
func (e *Engine) KitTotals(ctx context.Context, id uint) (models.KitCosts, error) {
	kit, err := get[models.Kit](ctx, e.db.Unscoped(), id)
	if err != nil {
		return models.KitCosts{}, err
	}

	return kit.KitCosts, nil
}

// KitItems returns the lines of a kit ordered by ID. Each line has its item
// loaded, soft-deleted items included.
func (e *Engine) KitItems(ctx context.Context, kitID uint) ([]models.KitItem, error) {
	lines := []models.KitItem{}

	err := e.read(ctx, func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&models.Kit{}, kitID).Error; err != nil {
			return err
		}

		return tx.Preload("Item", unscoped).Where("kit_id = ?", kitID).Order("id ASC").Find(&lines).Error
	})
	if err != nil {
		return nil, err
	}

	return lines, nil
}

// findKitItem returns the line for the item in the kit, if there is one.
func findKitItem(tx *gorm.DB, kitID, itemID uint) (*models.KitItem, error) {
	var lines []models.KitItem
	err := tx.Where("kit_id = ? AND item_id = ?", kitID, itemID).Limit(1).Find(&lines).Error
	if err != nil || len(lines) == 0 {
		return nil, err
	}

	return &lines[0], nil
}

// addKitItem inserts a new line after checking for duplicates and
// verifying that the item is live.
func addKitItem(w *work, kitID, itemID, quantity uint) (models.KitItem, error) {
	if err := models.ValidateQuantities(quantity); err != nil {
		return models.KitItem{}, err
	}

	existing, err := findKitItem(w.db, kitID, itemID)
	if err != nil {
		return models.KitItem{}, err
	}

	if existing != nil {
		return models.KitItem{}, &models.DuplicateError{Kind: string(KindKitItem), ExistingID: existing.ID}
	}

	if err := live(w.db, &models.Item{}, KindItem, itemID); err != nil {
		return models.KitItem{}, err
	}

	line := models.KitItem{KitID: kitID, ItemID: itemID, Quantity: quantity}
	if err := w.db.Omit(clause.Associations).Create(&line).Error; err != nil {
		return models.KitItem{}, err
	}

	w.record(ActionCreate, KindKitItem, line.ID)
	return line, nil
}

// AddKitItem adds an item to a kit. If the kit already contains the item,
// a *models.DuplicateError with the existing line is returned.
func (e *Engine) AddKitItem(ctx context.Context, kitID, itemID, quantity uint) (models.KitItem, error) {
	var line models.KitItem

	err := e.mutate(ctx, func(w *work) (err error) {
		if _, err := lockKit(w.db, kitID); err != nil {
			return err
		}

		line, err = addKitItem(w, kitID, itemID, quantity)
		if err != nil {
			return err
		}

		w.changed(KindKit, kitID)
		return nil
	})
	if err != nil {
		return models.KitItem{}, err
	}

	return line, nil
}

// lockKitItem loads a kit line and locks the kit it belongs to.
func lockKitItem(tx *gorm.DB, id uint) (models.KitItem, error) {
	var line models.KitItem
	if err := tx.First(&line, id).Error; err != nil {
		return line, err
	}

	_, err := lockKit(tx, line.KitID)
	return line, err
}

// UpdateKitItemQuantity sets the quantity of a kit line.
func (e *Engine) UpdateKitItemQuantity(ctx context.Context, id, quantity uint) (models.KitItem, error) {
	var line models.KitItem

	err := e.mutate(ctx, func(w *work) (err error) {
		if err := models.ValidateQuantities(quantity); err != nil {
			return err
		}

		line, err = lockKitItem(w.db, id)
		if err != nil {
			return err
		}

		line.Quantity = quantity
		if err := w.db.Omit(clause.Associations).Save(&line).Error; err != nil {
			return err
		}

		w.changed(KindKit, line.KitID)
		w.record(ActionUpdate, KindKitItem, id)
		return nil
	})
	if err != nil {
		return models.KitItem{}, err
	}

	return line, nil
}

// RemoveKitItem removes a line from its kit.
func (e *Engine) RemoveKitItem(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		line, err := lockKitItem(w.db, id)
		if err != nil {
			return err
		}

		if err := w.db.Delete(&line).Error; err != nil {
			return err
		}

		w.changed(KindKit, line.KitID)
		w.record(ActionDelete, KindKitItem, id)
		return nil
	})
}

// UpdateKitItems applies several edits to the lines of a kit.
// The kit and everything depending on it is recomputed once.
func (e *Engine) UpdateKitItems(ctx context.Context, kitID uint, edits []KitItemEdit) ([]models.KitItem, error) {
	seen := make(map[uint]bool, len(edits))
	for _, edit := range edits {
		if seen[edit.ItemID] {
			return nil, fmt.Errorf("%w: item %d is edited twice", models.ErrDuplicateAssociation, edit.ItemID)
		}
		seen[edit.ItemID] = true

		if !edit.Delete {
			if err := models.ValidateQuantities(edit.Quantity); err != nil {
				return nil, err
			}
		}
	}

	err := e.mutate(ctx, func(w *work) error {
		if _, err := lockKit(w.db, kitID); err != nil {
			return err
		}

		for _, edit := range edits {
			existing, err := findKitItem(w.db, kitID, edit.ItemID)
			if err != nil {
				return err
			}

			switch {
			case existing == nil && edit.Delete:
				return fmt.Errorf("%w kit line for item %d in kit %d", models.ErrResourceNotFound, edit.ItemID, kitID)
			case existing == nil:
				if _, err := addKitItem(w, kitID, edit.ItemID, edit.Quantity); err != nil {
					return err
				}
			case edit.Delete:
				if err := w.db.Delete(existing).Error; err != nil {
					return err
				}
				w.record(ActionDelete, KindKitItem, existing.ID)
			case existing.Quantity != edit.Quantity:
				existing.Quantity = edit.Quantity
				if err := w.db.Omit(clause.Associations).Save(existing).Error; err != nil {
					return err
				}
				w.record(ActionUpdate, KindKitItem, existing.ID)
			}
		}

		w.changed(KindKit, kitID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return e.KitItems(ctx, kitID)
}

// SetKitItems replaces the contents of a kit. Lines for items that stay in
// the kit keep their ID.
func (e *Engine) SetKitItems(ctx context.Context, kitID uint, lines []KitLine) ([]models.KitItem, error) {
	wanted := make(map[uint]uint, len(lines))
	for _, l := range lines {
		if _, ok := wanted[l.ItemID]; ok {
			return nil, fmt.Errorf("%w: item %d is listed twice", models.ErrDuplicateAssociation, l.ItemID)
		}

		if err := models.ValidateQuantities(l.Quantity); err != nil {
			return nil, err
		}
		wanted[l.ItemID] = l.Quantity
	}

	err := e.mutate(ctx, func(w *work) error {
		if _, err := lockKit(w.db, kitID); err != nil {
			return err
		}

		var current []models.KitItem
		if err := w.db.Where("kit_id = ?", kitID).Order("id ASC").Find(&current).Error; err != nil {
			return err
		}

		for i := range current {
			line := &current[i]
			quantity, keep := wanted[line.ItemID]
			delete(wanted, line.ItemID)

			switch {
			case !keep:
				if err := w.db.Delete(line).Error; err != nil {
					return err
				}
				w.record(ActionDelete, KindKitItem, line.ID)
			case line.Quantity != quantity:
				line.Quantity = quantity
				if err := w.db.Omit(clause.Associations).Save(line).Error; err != nil {
					return err
				}
				w.record(ActionUpdate, KindKitItem, line.ID)
			}
		}

		for _, l := range lines {
			if _, add := wanted[l.ItemID]; !add {
				continue
			}

			if _, err := addKitItem(w, kitID, l.ItemID, l.Quantity); err != nil {
				return err
			}
		}

		w.changed(KindKit, kitID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return e.KitItems(ctx, kitID)
}
