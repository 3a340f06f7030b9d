package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type Village struct {
	ID        int       `gorm:"primary_key" json:"id"`
	BranchId  int       `gorm:"index;not null" json:"branch_id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	ZoneId    int       `gorm:"index;not null" json:"zone_id"`
	Zone      *Zone     `json:"zone,omitempty"`
	TehsilId  int       `gorm:"index;not null" json:"tehsil_id"`
	Tehsil    *Tehsil   `json:"tehsil,omitempty"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewVillage struct {
	Name     string `json:"name" binding:"required"`
	ZoneId   int    `json:"zone_id" binding:"required"`
	TehsilId int    `json:"tehsil_id" binding:"required"`
}

func (input *NewVillage) validate(ctx context.Context, branchId int, id int) error {
	if err := utils.ValidateUnique[Village](ctx, branchId, "name", input.Name, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[Zone](ctx, branchId, input.ZoneId); err != nil {
		return errors.New("invalid zone id")
	}
	if err := utils.ValidateResourceId[Tehsil](ctx, branchId, input.TehsilId); err != nil {
		return errors.New("invalid tehsil id")
	}
	return nil
}

func CreateVillage(ctx context.Context, input *NewVillage) (*Village, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	village := Village{
		BranchId: branchId,
		Name:     input.Name,
		ZoneId:   input.ZoneId,
		TehsilId: input.TehsilId,
		IsActive: utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&village).Error; err != nil {
		return nil, err
	}
	return &village, nil
}

func UpdateVillage(ctx context.Context, id int, input *NewVillage) (*Village, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	village, err := utils.FetchModel[Village](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, branchId, id); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&village).Updates(map[string]interface{}{
		"Name":     input.Name,
		"ZoneId":   input.ZoneId,
		"TehsilId": input.TehsilId,
	}).Error; err != nil {
		return nil, err
	}
	return village, nil
}

func DeleteVillage(ctx context.Context, id int) (*Village, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	village, err := utils.FetchModel[Village](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&Member{}).
		Where("village_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("village has members")
	}
	if err = db.WithContext(ctx).Delete(&village).Error; err != nil {
		return nil, err
	}
	return village, nil
}

func GetVillage(ctx context.Context, id int) (*Village, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[Village](ctx, branchId, id, "Zone", "Tehsil")
}

func GetVillages(ctx context.Context, name *string, zoneId *int, tehsilId *int) ([]*Village, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*Village
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId).
		Preload("Zone").Preload("Tehsil")
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if zoneId != nil && *zoneId > 0 {
		dbCtx = dbCtx.Where("zone_id = ?", *zoneId)
	}
	if tehsilId != nil && *tehsilId > 0 {
		dbCtx = dbCtx.Where("tehsil_id = ?", *tehsilId)
	}
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
