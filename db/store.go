package db

import (
	"context"
	"errors"

	"trackventory/models"

	"gorm.io/gorm"
)

// Find loads a record by id, mapping gorm's not-found to ErrNotFound.
func Find[T any](ctx context.Context, conn *gorm.DB, id uint) (*T, error) {
	var m T
	if err := conn.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func Create[T any](ctx context.Context, conn *gorm.DB, m *T) error {
	return translate(conn.WithContext(ctx).Create(m).Error)
}

// UpdateFields merges the supplied columns into the record identified by
// id and returns the row as stored.
func UpdateFields[T any](ctx context.Context, conn *gorm.DB, id uint, fields map[string]interface{}) (*T, error) {
	m, err := Find[T](ctx, conn, id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := translate(conn.WithContext(ctx).Model(m).Updates(fields).Error); err != nil {
			return nil, err
		}
	}
	return Find[T](ctx, conn, id)
}

// Delete removes a record by id. Dependent rows are cascaded or nulled by
// the FK policies declared on the models. Deleting an id that no longer
// exists reports ErrNotFound.
func Delete[T any](ctx context.Context, conn *gorm.DB, id uint) error {
	res := conn.WithContext(ctx).Delete(new(T), id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteRole refuses to remove a role that users still reference.
func DeleteRole(ctx context.Context, conn *gorm.DB, id uint) error {
	if _, err := Find[models.Role](ctx, conn, id); err != nil {
		return err
	}
	var n int64
	if err := conn.WithContext(ctx).Model(&models.User{}).Where("role_id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return ErrRoleInUse
	}
	return Delete[models.Role](ctx, conn, id)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConstraint
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
