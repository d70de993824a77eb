package rollup

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahana-eden/budget/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var bundleFields = []string{"Name", "Description", "Comments"}

type BundleFilter struct {
	Name           string // Glob pattern for the name
	IncludeDeleted bool
}

// BundleContent is one entry of the contents of a bundle. Exactly one
// of KitID and ItemID must be set.
type BundleContent struct {
	KitID  *uint `json:"kitId" example:"2"`     // ID of the kit
	ItemID *uint `json:"itemId" example:"null"` // ID of the item
	models.Consumption
}

// BundleContents are the lines of a bundle.
type BundleContents struct {
	Kits  []models.BundleKit  `json:"kits"`  // Kit lines with the kit loaded
	Items []models.BundleItem `json:"items"` // Item lines with the item loaded
}

func lockBundle(tx *gorm.DB, id uint) (models.Bundle, error) {
	var bundle models.Bundle
	err := tx.Clauses(lockForUpdate).First(&bundle, id).Error
	return bundle, err
}

// CreateBundle creates an empty bundle.
func (e *Engine) CreateBundle(ctx context.Context, bundle models.Bundle) (models.Bundle, error) {
	bundle.DefaultModel = models.DefaultModel{}
	bundle.BundleCosts = models.BundleCosts{}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&bundle).Error; err != nil {
			return err
		}

		w.record(ActionCreate, KindBundle, bundle.ID)
		return nil
	})
	if err != nil {
		return models.Bundle{}, err
	}

	return bundle, nil
}

// UpdateBundle updates the named fields of a bundle.
func (e *Engine) UpdateBundle(ctx context.Context, id uint, data models.Bundle, fields ...string) (models.Bundle, error) {
	var bundle models.Bundle

	err := e.mutate(ctx, func(w *work) (err error) {
		bundle, err = lockBundle(w.db, id)
		if err != nil {
			return err
		}

		if err := assign(&bundle, data, bundleFields, fields); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&bundle).Error; err != nil {
			return err
		}

		w.record(ActionUpdate, KindBundle, id)
		return nil
	})
	if err != nil {
		return models.Bundle{}, err
	}

	return bundle, nil
}

// DeleteBundle deletes a bundle. It fails with models.ErrReferenceInUse
// while any budget deploys the bundle.
func (e *Engine) DeleteBundle(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		bundle, err := lockBundle(w.db, id)
		if err != nil {
			return err
		}

		err = restrict(w.db, KindBundle, id, citation{&models.BudgetBundle{}, "bundle_id", "budget bundle lines"})
		if err != nil {
			return err
		}

		if err := w.db.Where("bundle_id = ?", id).Delete(&models.BundleKit{}).Error; err != nil {
			return err
		}

		if err := w.db.Where("bundle_id = ?", id).Delete(&models.BundleItem{}).Error; err != nil {
			return err
		}

		if err := w.db.Delete(&bundle).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindBundle, id)
		return nil
	})
}

// GetBundle returns a bundle, soft-deleted or not.
func (e *Engine) GetBundle(ctx context.Context, id uint) (models.Bundle, error) {
	return get[models.Bundle](ctx, e.db.Unscoped(), id)
}

// GetBundleByName returns the live bundle with the name.
func (e *Engine) GetBundleByName(ctx context.Context, name string) (models.Bundle, error) {
	return getBy[models.Bundle](ctx, e.db, "name", strings.TrimSpace(name))
}

// ListBundles returns all bundles matching the filter ordered by name.
func (e *Engine) ListBundles(ctx context.Context, filter BundleFilter) ([]models.Bundle, error) {
	q := e.db.WithContext(ctx).Order("name ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	return list(q, filter.Name, func(b models.Bundle) string { return b.Name })
}

// BundleTotals returns the cached totals of a bundle.
func (e *Engine) BundleTotals(ctx context.Context, id uint) (models.BundleCosts, error) {
	bundle, err := get[models.Bundle](ctx, e.db.Unscoped(), id)
	if err != nil {
		return models.BundleCosts{}, err
	}

	return bundle.BundleCosts, nil
}

func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}

// BundleContents returns the kit and item lines of a bundle ordered by ID.
func (e *Engine) BundleContents(ctx context.Context, bundleID uint) (BundleContents, error) {
	contents := BundleContents{
		Kits:  []models.BundleKit{},
		Items: []models.BundleItem{},
	}

	err := e.read(ctx, func(tx *gorm.DB) error {
		if err := tx.Unscoped().First(&models.Bundle{}, bundleID).Error; err != nil {
			return err
		}

		err := tx.Preload("Kit", unscoped).Where("bundle_id = ?", bundleID).Order("id ASC").Find(&contents.Kits).Error
		if err != nil {
			return err
		}

		return tx.Preload("Item", unscoped).Where("bundle_id = ?", bundleID).Order("id ASC").Find(&contents.Items).Error
	})
	if err != nil {
		return BundleContents{}, err
	}

	return contents, nil
}

func addBundleKit(w *work, bundleID, kitID uint, c models.Consumption) (models.BundleKit, error) {
	if err := models.ValidateQuantities(c.Quantity); err != nil {
		return models.BundleKit{}, err
	}

	var existing []models.BundleKit
	if err := w.db.Where("bundle_id = ? AND kit_id = ?", bundleID, kitID).Limit(1).Find(&existing).Error; err != nil {
		return models.BundleKit{}, err
	}

	if len(existing) > 0 {
		return models.BundleKit{}, &models.DuplicateError{Kind: string(KindBundleKit), ExistingID: existing[0].ID}
	}

	if err := live(w.db, &models.Kit{}, KindKit, kitID); err != nil {
		return models.BundleKit{}, err
	}

	line := models.BundleKit{BundleID: bundleID, KitID: kitID, Consumption: c}
	if err := w.db.Omit(clause.Associations).Create(&line).Error; err != nil {
		return models.BundleKit{}, err
	}

	w.record(ActionCreate, KindBundleKit, line.ID)
	return line, nil
}

func addBundleItem(w *work, bundleID, itemID uint, c models.Consumption) (models.BundleItem, error) {
	if err := models.ValidateQuantities(c.Quantity); err != nil {
		return models.BundleItem{}, err
	}

	var existing []models.BundleItem
	if err := w.db.Where("bundle_id = ? AND item_id = ?", bundleID, itemID).Limit(1).Find(&existing).Error; err != nil {
		return models.BundleItem{}, err
	}

	if len(existing) > 0 {
		return models.BundleItem{}, &models.DuplicateError{Kind: string(KindBundleItem), ExistingID: existing[0].ID}
	}

	if err := live(w.db, &models.Item{}, KindItem, itemID); err != nil {
		return models.BundleItem{}, err
	}

	line := models.BundleItem{BundleID: bundleID, ItemID: itemID, Consumption: c}
	if err := w.db.Omit(clause.Associations).Create(&line).Error; err != nil {
		return models.BundleItem{}, err
	}

	w.record(ActionCreate, KindBundleItem, line.ID)
	return line, nil
}

// AddBundleKit adds a kit to a bundle.
func (e *Engine) AddBundleKit(ctx context.Context, bundleID, kitID uint, c models.Consumption) (models.BundleKit, error) {
	var line models.BundleKit

	err := e.mutate(ctx, func(w *work) (err error) {
		if _, err := lockBundle(w.db, bundleID); err != nil {
			return err
		}

		line, err = addBundleKit(w, bundleID, kitID, c)
		if err != nil {
			return err
		}

		w.changed(KindBundle, bundleID)
		return nil
	})
	if err != nil {
		return models.BundleKit{}, err
	}

	return line, nil
}

// UpdateBundleKit sets quantity and consumption of a kit line.
func (e *Engine) UpdateBundleKit(ctx context.Context, id uint, c models.Consumption) (models.BundleKit, error) {
	var line models.BundleKit

	err := e.mutate(ctx, func(w *work) error {
		if err := models.ValidateQuantities(c.Quantity); err != nil {
			return err
		}

		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBundle(w.db, line.BundleID); err != nil {
			return err
		}

		line.Consumption = c
		if err := w.db.Omit(clause.Associations).Save(&line).Error; err != nil {
			return err
		}

		w.changed(KindBundle, line.BundleID)
		w.record(ActionUpdate, KindBundleKit, id)
		return nil
	})
	if err != nil {
		return models.BundleKit{}, err
	}

	return line, nil
}

// RemoveBundleKit removes a kit line from its bundle.
func (e *Engine) RemoveBundleKit(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var line models.BundleKit
		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBundle(w.db, line.BundleID); err != nil {
			return err
		}

		if err := w.db.Delete(&line).Error; err != nil {
			return err
		}

		w.changed(KindBundle, line.BundleID)
		w.record(ActionDelete, KindBundleKit, id)
		return nil
	})
}

// AddBundleItem adds an item directly to a bundle.
func (e *Engine) AddBundleItem(ctx context.Context, bundleID, itemID uint, c models.Consumption) (models.BundleItem, error) {
	var line models.BundleItem

	err := e.mutate(ctx, func(w *work) (err error) {
		if _, err := lockBundle(w.db, bundleID); err != nil {
			return err
		}

		line, err = addBundleItem(w, bundleID, itemID, c)
		if err != nil {
			return err
		}

		w.changed(KindBundle, bundleID)
		return nil
	})
	if err != nil {
		return models.BundleItem{}, err
	}

	return line, nil
}

// UpdateBundleItem sets quantity and consumption of an item line.
func (e *Engine) UpdateBundleItem(ctx context.Context, id uint, c models.Consumption) (models.BundleItem, error) {
	var line models.BundleItem

	err := e.mutate(ctx, func(w *work) error {
		if err := models.ValidateQuantities(c.Quantity); err != nil {
			return err
		}

		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBundle(w.db, line.BundleID); err != nil {
			return err
		}

		line.Consumption = c
		if err := w.db.Omit(clause.Associations).Save(&line).Error; err != nil {
			return err
		}

		w.changed(KindBundle, line.BundleID)
		w.record(ActionUpdate, KindBundleItem, id)
		return nil
	})
	if err != nil {
		return models.BundleItem{}, err
	}

	return line, nil
}

// RemoveBundleItem removes an item line from its bundle.
func (e *Engine) RemoveBundleItem(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var line models.BundleItem
		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBundle(w.db, line.BundleID); err != nil {
			return err
		}

		if err := w.db.Delete(&line).Error; err != nil {
			return err
		}

		w.changed(KindBundle, line.BundleID)
		w.record(ActionDelete, KindBundleItem, id)
		return nil
	})
}

// SetBundleContents replaces the contents of a bundle. Lines for kits
// and items that stay in the bundle keep their ID.
func (e *Engine) SetBundleContents(ctx context.Context, bundleID uint, contents []BundleContent) (BundleContents, error) {
	kits := make(map[uint]models.Consumption)
	items := make(map[uint]models.Consumption)

	for _, c := range contents {
		if err := models.ValidateQuantities(c.Quantity); err != nil {
			return BundleContents{}, err
		}

		switch {
		case c.KitID != nil && c.ItemID == nil:
			if _, ok := kits[*c.KitID]; ok {
				return BundleContents{}, fmt.Errorf("%w: kit %d is listed twice", models.ErrDuplicateAssociation, *c.KitID)
			}
			kits[*c.KitID] = c.Consumption
		case c.ItemID != nil && c.KitID == nil:
			if _, ok := items[*c.ItemID]; ok {
				return BundleContents{}, fmt.Errorf("%w: item %d is listed twice", models.ErrDuplicateAssociation, *c.ItemID)
			}
			items[*c.ItemID] = c.Consumption
		default:
			return BundleContents{}, models.ErrInvalidContent
		}
	}

	err := e.mutate(ctx, func(w *work) error {
		if _, err := lockBundle(w.db, bundleID); err != nil {
			return err
		}

		var currentKits []models.BundleKit
		if err := w.db.Where("bundle_id = ?", bundleID).Order("id ASC").Find(&currentKits).Error; err != nil {
			return err
		}

		for i := range currentKits {
			line := &currentKits[i]
			c, keep := kits[line.KitID]
			delete(kits, line.KitID)

			switch {
			case !keep:
				if err := w.db.Delete(line).Error; err != nil {
					return err
				}
				w.record(ActionDelete, KindBundleKit, line.ID)
			case line.Consumption != c:
				line.Consumption = c
				if err := w.db.Omit(clause.Associations).Save(line).Error; err != nil {
					return err
				}
				w.record(ActionUpdate, KindBundleKit, line.ID)
			}
		}

		var currentItems []models.BundleItem
		if err := w.db.Where("bundle_id = ?", bundleID).Order("id ASC").Find(&currentItems).Error; err != nil {
			return err
		}

		for i := range currentItems {
			line := &currentItems[i]
			c, keep := items[line.ItemID]
			delete(items, line.ItemID)

			switch {
			case !keep:
				if err := w.db.Delete(line).Error; err != nil {
					return err
				}
				w.record(ActionDelete, KindBundleItem, line.ID)
			case line.Consumption != c:
				line.Consumption = c
				if err := w.db.Omit(clause.Associations).Save(line).Error; err != nil {
					return err
				}
				w.record(ActionUpdate, KindBundleItem, line.ID)
			}
		}

		// Remaining entries are new, they are added in input order
		for _, c := range contents {
			if c.KitID != nil {
				if _, add := kits[*c.KitID]; add {
					if _, err := addBundleKit(w, bundleID, *c.KitID, c.Consumption); err != nil {
						return err
					}
				}
				continue
			}

			if _, add := items[*c.ItemID]; add {
				if _, err := addBundleItem(w, bundleID, *c.ItemID, c.Consumption); err != nil {
					return err
				}
			}
		}

		w.changed(KindBundle, bundleID)
		return nil
	})
	if err != nil {
		return BundleContents{}, err
	}

	return e.BundleContents(ctx, bundleID)
}
