package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type Category struct {
	ID        int       `gorm:"primary_key" json:"id"`
	BranchId  int       `gorm:"index;not null" json:"branch_id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewCategory struct {
	Name string `json:"name" binding:"required"`
}

func (input *NewCategory) validate(ctx context.Context, branchId int, id int) error {
	return utils.ValidateUnique[Category](ctx, branchId, "name", input.Name, id)
}

func CreateCategory(ctx context.Context, input *NewCategory) (*Category, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	category := Category{
		BranchId: branchId,
		Name:     input.Name,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func UpdateCategory(ctx context.Context, id int, input *NewCategory) (*Category, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	category, err := utils.FetchModel[Category](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, branchId, id); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&category).Updates(map[string]interface{}{
		"Name": input.Name,
	}).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func DeleteCategory(ctx context.Context, id int) (*Category, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	category, err := utils.FetchModel[Category](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&Member{}).
		Where("category_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("category is assigned to members")
	}
	if err = db.WithContext(ctx).Delete(&category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

func GetCategory(ctx context.Context, id int) (*Category, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[Category](ctx, branchId, id)
}

func GetCategories(ctx context.Context, name *string) ([]*Category, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*Category
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
