package rollup

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/ryanuber/go-glob"
	"github.com/sahana-eden/budget/internal/models"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// softDeletable is implemented by all models that embed models.DefaultModel.
type softDeletable interface {
	Deleted() bool
}

// assign copies the named fields from src to dst. Without names,
// all editable fields are copied.
func assign[T any](dst *T, src T, editable []string, fields []string) error {
	if len(fields) == 0 {
		fields = editable
	}

	d := reflect.ValueOf(dst).Elem()
	s := reflect.ValueOf(src)

	for _, field := range fields {
		if !slices.Contains(editable, field) {
			return fmt.Errorf("%w: %s", models.ErrUnknownField, field)
		}

		d.FieldByName(field).Set(s.FieldByName(field))
	}

	return nil
}

// citation is a column of an association table that references a leaf or composite.
type citation struct {
	model  any
	column string
	name   string
}

// restrict fails with models.ErrReferenceInUse if any row cites id.
func restrict(tx *gorm.DB, kind Kind, id uint, citations ...citation) error {
	for _, c := range citations {
		var n int64
		err := tx.Model(c.model).Where(fmt.Sprintf("%s = ?", c.column), id).Count(&n).Error
		if err != nil {
			return err
		}

		if n > 0 {
			return fmt.Errorf("%w: %s %d is used by %d %s", models.ErrReferenceInUse, kind, id, n, c.name)
		}
	}

	return nil
}

// live verifies that a referenced row exists and is not soft-deleted.
func live(tx *gorm.DB, dest any, kind Kind, id uint) error {
	err := tx.First(dest, id).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return fmt.Errorf("%w: %s %d", models.ErrUnknownReference, kind, id)
	}

	return err
}

// softDelete marks a live row as deleted.
func softDelete[T softDeletable](w *work, kind Kind, id uint) (T, error) {
	var row T
	err := w.db.Clauses(lockForUpdate).First(&row, id).Error
	if err != nil {
		return row, err
	}

	err = w.db.Delete(&row).Error
	if err != nil {
		return row, err
	}

	w.changed(kind, id)
	w.record(ActionSoftDelete, kind, id)

	err = w.db.Unscoped().First(&row, id).Error
	return row, err
}

// restore clears the deletion mark of a row. Restoring a live row does nothing.
func restore[T softDeletable](w *work, kind Kind, id uint) (T, error) {
	var row T
	err := w.db.Unscoped().Clauses(lockForUpdate).First(&row, id).Error
	if err != nil {
		return row, err
	}

	if !row.Deleted() {
		return row, nil
	}

	err = w.db.Unscoped().Model(&row).Update("deleted_at", nil).Error
	if err != nil {
		return row, err
	}

	w.changed(kind, id)
	w.record(ActionRestore, kind, id)

	err = w.db.First(&row, id).Error
	return row, err
}

// get reads a single row by ID.
func get[T any](ctx context.Context, db *gorm.DB, id uint) (T, error) {
	var row T
	err := db.WithContext(ctx).First(&row, id).Error
	if err != nil {
		return row, wrap(err)
	}

	return row, nil
}

// getBy reads a single live row where column equals value.
func getBy[T any](ctx context.Context, db *gorm.DB, column, value string) (T, error) {
	var row T
	err := db.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).First(&row).Error
	if err != nil {
		return row, wrap(err)
	}

	return row, nil
}

// list reads all rows matching the query and filters them by the glob
// pattern on key. An empty pattern matches everything.
func list[T any](q *gorm.DB, pattern string, key func(T) string) ([]T, error) {
	var rows []T
	err := q.Find(&rows).Error
	if err != nil {
		return nil, wrap(err)
	}

	result := make([]T, 0, len(rows))
	for _, row := range rows {
		if pattern == "" || glob.Glob(pattern, key(row)) {
			result = append(result, row)
		}
	}

	return result, nil
}
