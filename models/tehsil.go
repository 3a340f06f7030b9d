package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type Tehsil struct {
	ID        int       `gorm:"primary_key" json:"id"`
	BranchId  int       `gorm:"index;not null" json:"branch_id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewTehsil struct {
	Name string `json:"name" binding:"required"`
}

func (input *NewTehsil) validate(ctx context.Context, branchId int, id int) error {
	return utils.ValidateUnique[Tehsil](ctx, branchId, "name", input.Name, id)
}

func CreateTehsil(ctx context.Context, input *NewTehsil) (*Tehsil, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	tehsil := Tehsil{
		BranchId: branchId,
		Name:     input.Name,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&tehsil).Error; err != nil {
		return nil, err
	}
	return &tehsil, nil
}

func UpdateTehsil(ctx context.Context, id int, input *NewTehsil) (*Tehsil, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	tehsil, err := utils.FetchModel[Tehsil](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, branchId, id); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&tehsil).Updates(map[string]interface{}{
		"Name": input.Name,
	}).Error; err != nil {
		return nil, err
	}
	return tehsil, nil
}

func DeleteTehsil(ctx context.Context, id int) (*Tehsil, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	tehsil, err := utils.FetchModel[Tehsil](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&Village{}).
		Where("tehsil_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("tehsil has villages")
	}
	if err = db.WithContext(ctx).Delete(&tehsil).Error; err != nil {
		return nil, err
	}
	return tehsil, nil
}

func GetTehsil(ctx context.Context, id int) (*Tehsil, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[Tehsil](ctx, branchId, id)
}

func GetTehsils(ctx context.Context, name *string) ([]*Tehsil, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*Tehsil
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
