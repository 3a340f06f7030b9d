package utils

import (
	"context"
	"errors"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
)

// check if id exists, scoped to branch when branchId > 0, return RecordNotFound error
func ValidateResourceId[T any](ctx context.Context, branchId int, id interface{}) error {

	count, err := ResourceCountWhere[T](ctx, branchId, "id = ?", id)
	if err != nil {
		return err
	}
	if count <= 0 {
		return ErrorRecordNotFound
	}

	return nil
}

func ValidateUnique[T any](ctx context.Context, branchId int, column string, value interface{}, exceptId int) error {
	var count int64
	var err error
	if exceptId == 0 {
		count, err = ResourceCountWhere[T](ctx, branchId, column+" = ?", value)
	} else {
		count, err = ResourceCountWhere[T](ctx, branchId, column+" = ? AND NOT id = ?", value, exceptId)
	}

	if err != nil {
		return err
	}
	if count > 0 {
		return errors.New("duplicate " + column)
	}
	return nil
}

// count records, using WHERE branch_id = ? AND $condition
// branchId can be 0 for branch-less masters (branches, users)
func ResourceCountWhere[T any](ctx context.Context, branchId int, condition string, value ...interface{}) (int64, error) {
	var model T

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Model(&model)
	var count int64
	if branchId > 0 {
		dbCtx.Where("branch_id = ?", branchId)
	}
	dbCtx.Where(condition, value...)
	if err := dbCtx.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
