package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"gorm.io/gorm"
)

// VoucherNumberSeries groups per-module display prefixes (e.g. "SV-" for
// saving vouchers). The numeric voucher sequence itself is branch-owned; the
// series only controls presentation.
type VoucherNumberSeries struct {
	ID        int                         `gorm:"primary_key" json:"id"`
	Name      string                      `gorm:"size:100;not null" json:"name" binding:"required"`
	Modules   []VoucherNumberSeriesModule `gorm:"foreignKey:SeriesId" json:"modules"`
	CreatedAt time.Time                   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"autoUpdateTime" json:"updated_at"`
}

type VoucherNumberSeriesModule struct {
	SeriesId   int    `gorm:"primaryKey;autoIncrement:false" json:"series_id" binding:"required"`
	ModuleName string `gorm:"primaryKey;autoIncrement:false" json:"module_name" binding:"required"`
	Prefix     string `gorm:"size:10" json:"prefix"`
}

type NewVoucherNumberSeries struct {
	Name    string                         `json:"name" binding:"required"`
	Modules []NewVoucherNumberSeriesModule `json:"modules"`
}

type NewVoucherNumberSeriesModule struct {
	ModuleName string `json:"module_name" binding:"required"`
	Prefix     string `json:"prefix"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewVoucherNumberSeries) validate(ctx context.Context, id int) error {
	// name
	if err := utils.ValidateUnique[VoucherNumberSeries](ctx, 0, "name", input.Name, id); err != nil {
		return err
	}
	return nil
}

func mapVoucherNumberSeriesModule(input []NewVoucherNumberSeriesModule) []VoucherNumberSeriesModule {
	modules := make([]VoucherNumberSeriesModule, 0)
	for _, m := range input {
		modules = append(modules, VoucherNumberSeriesModule{
			ModuleName: m.ModuleName,
			Prefix:     m.Prefix,
		})
	}
	return modules
}

func (series VoucherNumberSeries) clearBranchPrefixCaches(ctx context.Context) error {
	var branchIds []int
	db := config.GetDB()
	if err := db.WithContext(ctx).Model(&Branch{}).
		Where("voucher_number_series_id = ?", series.ID).Select("id").Scan(&branchIds).Error; err != nil {
		return err
	}
	for _, id := range branchIds {
		if err := config.RemoveRedisKey("vnsPrefixMap:" + itoa(id)); err != nil {
			return err
		}
	}
	return nil
}

func CreateVoucherNumberSeries(ctx context.Context, input *NewVoucherNumberSeries) (*VoucherNumberSeries, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	series := VoucherNumberSeries{
		Name:    input.Name,
		Modules: mapVoucherNumberSeriesModule(input.Modules),
	}

	db := config.GetDB()
	// db action
	err := db.WithContext(ctx).Create(&series).Error
	if err != nil {
		return nil, err
	}
	return &series, nil
}

func UpdateVoucherNumberSeries(ctx context.Context, id int, input *NewVoucherNumberSeries) (*VoucherNumberSeries, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	modules := mapVoucherNumberSeriesModule(input.Modules)

	series, err := utils.FetchSingleModel[VoucherNumberSeries](ctx, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	tx := db.Begin()
	// db action
	if err = tx.WithContext(ctx).Model(&series).
		Updates(map[string]interface{}{
			"Name": input.Name,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err = tx.WithContext(ctx).Model(&series).
		Session(&gorm.Session{FullSaveAssociations: true, SkipHooks: true}).
		Association("Modules").
		Unscoped().Replace(&modules); err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if err := series.clearBranchPrefixCaches(ctx); err != nil {
		return nil, err
	}

	return series, nil
}

func DeleteVoucherNumberSeries(ctx context.Context, id int) (*VoucherNumberSeries, error) {

	db := config.GetDB()
	result, err := utils.FetchSingleModel[VoucherNumberSeries](ctx, id, "Modules")
	if err != nil {
		return nil, err
	}

	// Do not delete if any Branch use this series
	var count int64
	if err = db.WithContext(ctx).Model(&Branch{}).
		Where("voucher_number_series_id = ?", result.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("used by branch")
	}

	// db action
	err = db.WithContext(ctx).Select("Modules").Delete(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func GetVoucherNumberSeries(ctx context.Context, id int) (*VoucherNumberSeries, error) {
	return utils.FetchSingleModel[VoucherNumberSeries](ctx, id, "Modules")
}

func GetVoucherNumberSeriesAll(ctx context.Context, name *string) ([]*VoucherNumberSeries, error) {
	db := config.GetDB()
	var results []*VoucherNumberSeries

	dbCtx := db.WithContext(ctx)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	// db query
	err := dbCtx.Preload("Modules").Order("name").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
