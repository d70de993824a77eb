package rollup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sahana-eden/budget/internal/models"
	"github.com/sahana-eden/budget/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var budgetFields = []string{"Name", "Description", "Comments"}

type BudgetFilter struct {
	Name           string // Glob pattern for the name
	IncludeDeleted bool
}

// StaffLine deploys a staff type in a budget.
type StaffLine struct {
	StaffID    uint  `json:"staffId" example:"5"`    // ID of the staff type
	LocationID *uint `json:"locationId" example:"3"` // ID of the location, optional
	models.Deployment
}

// BundleLine deploys a bundle in a budget.
type BundleLine struct {
	BundleID   uint  `json:"bundleId" example:"2"`   // ID of the bundle
	LocationID *uint `json:"locationId" example:"3"` // ID of the location, optional
	models.Deployment
}

// BudgetLines are the lines of a budget.
type BudgetLines struct {
	Staff   []models.BudgetStaff  `json:"staff"`   // Staff lines with staff type and location loaded
	Bundles []models.BudgetBundle `json:"bundles"` // Bundle lines with bundle and location loaded
}

func lockBudget(tx *gorm.DB, id uint) (models.Budget, error) {
	var budget models.Budget
	err := tx.Clauses(lockForUpdate).First(&budget, id).Error
	return budget, err
}

// nullable restricts q to rows where column equals v, NULL included.
func nullable(q *gorm.DB, column string, v *uint) *gorm.DB {
	if v == nil {
		return q.Where(fmt.Sprintf("%s IS NULL", column))
	}

	return q.Where(fmt.Sprintf("%s = ?", column), *v)
}

// checkDeployment validates the scalar fields of a budget line.
func (e *Engine) checkDeployment(d models.Deployment, now time.Time) error {
	if err := models.ValidateQuantities(d.Quantity, d.Months); err != nil {
		return err
	}

	if e.settings.AllowBackdatedBudget || d.StartMonth == nil {
		return nil
	}

	current := types.MonthOf(now)
	if d.StartMonth.Before(current) {
		return fmt.Errorf("%w: %s is before %s", models.ErrBackdatedLine, d.StartMonth, current)
	}

	return nil
}

// CreateBudget creates an empty budget.
func (e *Engine) CreateBudget(ctx context.Context, budget models.Budget) (models.Budget, error) {
	budget.DefaultModel = models.DefaultModel{}
	budget.BudgetCosts = models.BudgetCosts{}

	err := e.mutate(ctx, func(w *work) error {
		if err := w.db.Omit(clause.Associations).Create(&budget).Error; err != nil {
			return err
		}

		w.record(ActionCreate, KindBudget, budget.ID)
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// UpdateBudget updates the named fields of a budget.
func (e *Engine) UpdateBudget(ctx context.Context, id uint, data models.Budget, fields ...string) (models.Budget, error) {
	var budget models.Budget

	err := e.mutate(ctx, func(w *work) (err error) {
		budget, err = lockBudget(w.db, id)
		if err != nil {
			return err
		}

		if err := assign(&budget, data, budgetFields, fields); err != nil {
			return err
		}

		if err := w.db.Omit(clause.Associations).Save(&budget).Error; err != nil {
			return err
		}

		w.record(ActionUpdate, KindBudget, id)
		return nil
	})
	if err != nil {
		return models.Budget{}, err
	}

	return budget, nil
}

// DeleteBudget removes all lines of a budget and soft-deletes it.
func (e *Engine) DeleteBudget(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		budget, err := lockBudget(w.db, id)
		if err != nil {
			return err
		}

		if err := w.db.Where("budget_id = ?", id).Delete(&models.BudgetStaff{}).Error; err != nil {
			return err
		}

		if err := w.db.Where("budget_id = ?", id).Delete(&models.BudgetBundle{}).Error; err != nil {
			return err
		}

		if err := w.db.Delete(&budget).Error; err != nil {
			return err
		}

		w.record(ActionDelete, KindBudget, id)
		return nil
	})
}

// GetBudget returns a budget, soft-deleted or not.
func (e *Engine) GetBudget(ctx context.Context, id uint) (models.Budget, error) {
	return get[models.Budget](ctx, e.db.Unscoped(), id)
}

// GetBudgetByName returns the live budget with the name.
func (e *Engine) GetBudgetByName(ctx context.Context, name string) (models.Budget, error) {
	return getBy[models.Budget](ctx, e.db, "name", strings.TrimSpace(name))
}

// ListBudgets returns all budgets matching the filter ordered by name.
func (e *Engine) ListBudgets(ctx context.Context, filter BudgetFilter) ([]models.Budget, error) {
	q := e.db.WithContext(ctx).Order("name ASC, id ASC")

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	return list(q, filter.Name, func(b models.Budget) string { return b.Name })
}

// BudgetTotals returns the cached totals of a budget.
func (e *Engine) BudgetTotals(ctx context.Context, id uint) (models.BudgetCosts, error) {
	budget, err := get[models.Budget](ctx, e.db.Unscoped(), id)
	if err != nil {
		return models.BudgetCosts{}, err
	}

	return budget.BudgetCosts, nil
}

func loadBudgetLines(tx *gorm.DB, budgetID uint) (BudgetLines, error) {
	lines := BudgetLines{
		Staff:   []models.BudgetStaff{},
		Bundles: []models.BudgetBundle{},
	}

	err := tx.Preload("Staff", unscoped).Preload("Location", unscoped).
		Where("budget_id = ?", budgetID).Order("id ASC").Find(&lines.Staff).Error
	if err != nil {
		return BudgetLines{}, err
	}

	err = tx.Preload("Bundle", unscoped).Preload("Location", unscoped).
		Where("budget_id = ?", budgetID).Order("id ASC").Find(&lines.Bundles).Error
	if err != nil {
		return BudgetLines{}, err
	}

	return lines, nil
}

// BudgetLines returns the staff and bundle lines of a budget ordered by ID.
func (e *Engine) BudgetLines(ctx context.Context, budgetID uint) (BudgetLines, error) {
	var lines BudgetLines

	err := e.read(ctx, func(tx *gorm.DB) (err error) {
		if err := tx.Unscoped().First(&models.Budget{}, budgetID).Error; err != nil {
			return err
		}

		lines, err = loadBudgetLines(tx, budgetID)
		return err
	})
	if err != nil {
		return BudgetLines{}, err
	}

	return lines, nil
}

// duplicateStaff returns the ID of a staff line in the budget with the same
// staff type, location and project, excluding the line with ID except.
func duplicateStaff(tx *gorm.DB, budgetID uint, l StaffLine, except uint) (uint, error) {
	q := tx.Model(&models.BudgetStaff{}).Where("budget_id = ? AND staff_id = ? AND id <> ?", budgetID, l.StaffID, except)
	q = nullable(q, "location_id", l.LocationID)
	q = nullable(q, "project_id", l.ProjectID)

	var ids []uint
	err := q.Limit(1).Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	return ids[0], nil
}

func duplicateBundle(tx *gorm.DB, budgetID uint, l BundleLine, except uint) (uint, error) {
	q := tx.Model(&models.BudgetBundle{}).Where("budget_id = ? AND bundle_id = ? AND id <> ?", budgetID, l.BundleID, except)
	q = nullable(q, "location_id", l.LocationID)
	q = nullable(q, "project_id", l.ProjectID)

	var ids []uint
	err := q.Limit(1).Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	return ids[0], nil
}

// liveLocation verifies an optional location reference.
func liveLocation(tx *gorm.DB, id *uint) error {
	if id == nil {
		return nil
	}

	return live(tx, &models.Location{}, KindLocation, *id)
}

// writeStaff validates l and writes it to line. A line without ID is created.
func writeStaff(w *work, line *models.BudgetStaff, l StaffLine) error {
	existing, err := duplicateStaff(w.db, line.BudgetID, l, line.ID)
	if err != nil {
		return err
	}

	if existing != 0 {
		return &models.DuplicateError{Kind: string(KindBudgetStaff), ExistingID: existing}
	}

	if err := live(w.db, &models.Staff{}, KindStaff, l.StaffID); err != nil {
		return err
	}

	if err := liveLocation(w.db, l.LocationID); err != nil {
		return err
	}

	action := ActionUpdate
	if line.ID == 0 {
		action = ActionCreate
	}

	line.StaffID = l.StaffID
	line.LocationID = l.LocationID
	line.Deployment = l.Deployment

	if err := w.db.Omit(clause.Associations).Save(line).Error; err != nil {
		return err
	}

	w.record(action, KindBudgetStaff, line.ID)
	return nil
}

func writeBundle(w *work, line *models.BudgetBundle, l BundleLine) error {
	existing, err := duplicateBundle(w.db, line.BudgetID, l, line.ID)
	if err != nil {
		return err
	}

	if existing != 0 {
		return &models.DuplicateError{Kind: string(KindBudgetBundle), ExistingID: existing}
	}

	if err := live(w.db, &models.Bundle{}, KindBundle, l.BundleID); err != nil {
		return err
	}

	if err := liveLocation(w.db, l.LocationID); err != nil {
		return err
	}

	action := ActionUpdate
	if line.ID == 0 {
		action = ActionCreate
	}

	line.BundleID = l.BundleID
	line.LocationID = l.LocationID
	line.Deployment = l.Deployment

	if err := w.db.Omit(clause.Associations).Save(line).Error; err != nil {
		return err
	}

	w.record(action, KindBudgetBundle, line.ID)
	return nil
}

// AddBudgetStaff adds a staff line to a budget. The same staff type may be
// deployed several times as long as location or project differ.
func (e *Engine) AddBudgetStaff(ctx context.Context, budgetID uint, l StaffLine) (models.BudgetStaff, error) {
	line := models.BudgetStaff{BudgetID: budgetID}

	err := e.mutate(ctx, func(w *work) error {
		if err := e.checkDeployment(l.Deployment, w.now); err != nil {
			return err
		}

		if _, err := lockBudget(w.db, budgetID); err != nil {
			return err
		}

		if err := writeStaff(w, &line, l); err != nil {
			return err
		}

		w.changed(KindBudget, budgetID)
		return nil
	})
	if err != nil {
		return models.BudgetStaff{}, err
	}

	return line, nil
}

// UpdateBudgetStaff replaces all fields of a staff line.
func (e *Engine) UpdateBudgetStaff(ctx context.Context, id uint, l StaffLine) (models.BudgetStaff, error) {
	var line models.BudgetStaff

	err := e.mutate(ctx, func(w *work) error {
		if err := e.checkDeployment(l.Deployment, w.now); err != nil {
			return err
		}

		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBudget(w.db, line.BudgetID); err != nil {
			return err
		}

		if err := writeStaff(w, &line, l); err != nil {
			return err
		}

		w.changed(KindBudget, line.BudgetID)
		return nil
	})
	if err != nil {
		return models.BudgetStaff{}, err
	}

	return line, nil
}

// RemoveBudgetStaff removes a staff line from its budget.
func (e *Engine) RemoveBudgetStaff(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var line models.BudgetStaff
		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBudget(w.db, line.BudgetID); err != nil {
			return err
		}

		if err := w.db.Delete(&line).Error; err != nil {
			return err
		}

		w.changed(KindBudget, line.BudgetID)
		w.record(ActionDelete, KindBudgetStaff, id)
		return nil
	})
}

// AddBudgetBundle adds a bundle line to a budget. The same bundle may be
// deployed several times as long as location or project differ.
func (e *Engine) AddBudgetBundle(ctx context.Context, budgetID uint, l BundleLine) (models.BudgetBundle, error) {
	line := models.BudgetBundle{BudgetID: budgetID}

	err := e.mutate(ctx, func(w *work) error {
		if err := e.checkDeployment(l.Deployment, w.now); err != nil {
			return err
		}

		if _, err := lockBudget(w.db, budgetID); err != nil {
			return err
		}

		if err := writeBundle(w, &line, l); err != nil {
			return err
		}

		w.changed(KindBudget, budgetID)
		return nil
	})
	if err != nil {
		return models.BudgetBundle{}, err
	}

	return line, nil
}

// UpdateBudgetBundle replaces all fields of a bundle line.
func (e *Engine) UpdateBudgetBundle(ctx context.Context, id uint, l BundleLine) (models.BudgetBundle, error) {
	var line models.BudgetBundle

	err := e.mutate(ctx, func(w *work) error {
		if err := e.checkDeployment(l.Deployment, w.now); err != nil {
			return err
		}

		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBudget(w.db, line.BudgetID); err != nil {
			return err
		}

		if err := writeBundle(w, &line, l); err != nil {
			return err
		}

		w.changed(KindBudget, line.BudgetID)
		return nil
	})
	if err != nil {
		return models.BudgetBundle{}, err
	}

	return line, nil
}

// RemoveBudgetBundle removes a bundle line from its budget.
func (e *Engine) RemoveBudgetBundle(ctx context.Context, id uint) error {
	return e.mutate(ctx, func(w *work) error {
		var line models.BudgetBundle
		if err := w.db.First(&line, id).Error; err != nil {
			return err
		}

		if _, err := lockBudget(w.db, line.BudgetID); err != nil {
			return err
		}

		if err := w.db.Delete(&line).Error; err != nil {
			return err
		}

		w.changed(KindBudget, line.BudgetID)
		w.record(ActionDelete, KindBudgetBundle, id)
		return nil
	})
}

// deploymentKey identifies a budget line by what it deploys and where.
type deploymentKey struct {
	id       uint
	location uint
	located  bool
}

func newDeploymentKey(id uint, location *uint) deploymentKey {
	if location == nil {
		return deploymentKey{id: id}
	}

	return deploymentKey{id: id, location: *location, located: true}
}

// SetBudgetLines replaces all lines of a budget. The lines are validated
// together and the budget is recomputed once.
func (e *Engine) SetBudgetLines(ctx context.Context, budgetID uint, staff []StaffLine, bundles []BundleLine) (BudgetLines, error) {
	staffKeys := make(map[deploymentKey]bool, len(staff))
	for _, l := range staff {
		k := newDeploymentKey(l.StaffID, l.LocationID)
		if staffKeys[k] {
			return BudgetLines{}, fmt.Errorf("%w: staff type %d is listed twice for the same location", models.ErrDuplicateAssociation, l.StaffID)
		}
		staffKeys[k] = true
	}

	bundleKeys := make(map[deploymentKey]bool, len(bundles))
	for _, l := range bundles {
		k := newDeploymentKey(l.BundleID, l.LocationID)
		if bundleKeys[k] {
			return BudgetLines{}, fmt.Errorf("%w: bundle %d is listed twice for the same location", models.ErrDuplicateAssociation, l.BundleID)
		}
		bundleKeys[k] = true
	}

	err := e.mutate(ctx, func(w *work) error {
		for _, l := range staff {
			if err := e.checkDeployment(l.Deployment, w.now); err != nil {
				return err
			}
		}

		for _, l := range bundles {
			if err := e.checkDeployment(l.Deployment, w.now); err != nil {
				return err
			}
		}

		if _, err := lockBudget(w.db, budgetID); err != nil {
			return err
		}

		var old BudgetLines
		if err := w.db.Where("budget_id = ?", budgetID).Find(&old.Staff).Error; err != nil {
			return err
		}

		if err := w.db.Where("budget_id = ?", budgetID).Find(&old.Bundles).Error; err != nil {
			return err
		}

		for _, line := range old.Staff {
			if err := w.db.Delete(&line).Error; err != nil {
				return err
			}
			w.record(ActionDelete, KindBudgetStaff, line.ID)
		}

		for _, line := range old.Bundles {
			if err := w.db.Delete(&line).Error; err != nil {
				return err
			}
			w.record(ActionDelete, KindBudgetBundle, line.ID)
		}

		for _, l := range staff {
			line := models.BudgetStaff{BudgetID: budgetID}
			if err := writeStaff(w, &line, l); err != nil {
				return err
			}
		}

		for _, l := range bundles {
			line := models.BudgetBundle{BudgetID: budgetID}
			if err := writeBundle(w, &line, l); err != nil {
				return err
			}
		}

		w.changed(KindBudget, budgetID)
		return nil
	})
	if err != nil {
		return BudgetLines{}, err
	}

	return e.BudgetLines(ctx, budgetID)
}
