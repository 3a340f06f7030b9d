package models

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type Branch struct {
	ID                    int       `gorm:"primary_key" json:"id"`
	VoucherNumberSeriesId int       `gorm:"index;not null" json:"voucher_number_series_id"`
	Name                  string    `gorm:"index;size:100;not null" json:"name" binding:"required"`
	Code                  string    `gorm:"size:20" json:"code"`
	Phone                 string    `gorm:"size:20" json:"phone"`
	Address               string    `gorm:"type:text" json:"address"`
	ZoneId                int       `gorm:"index" json:"zone_id"`
	TehsilId              int       `gorm:"index" json:"tehsil_id"`
	AutoVerification      *bool     `gorm:"not null;default:false" json:"auto_verification"`
	IsActive              *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewBranch struct {
	VoucherNumberSeriesId int    `json:"voucher_number_series_id" binding:"required"`
	Name                  string `json:"name" binding:"required"`
	Code                  string `json:"code"`
	Phone                 string `json:"phone"`
	Address               string `json:"address"`
	ZoneId                int    `json:"zone_id"`
	TehsilId              int    `json:"tehsil_id"`
	AutoVerification      *bool  `json:"auto_verification"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewBranch) validate(ctx context.Context, id int) error {
	if id > 0 {
		if err := utils.ValidateResourceId[Branch](ctx, 0, id); err != nil {
			return err
		}
	}
	// name
	if err := utils.ValidateUnique[Branch](ctx, 0, "name", input.Name, id); err != nil {
		return err
	}
	// phone
	if len(strings.TrimSpace(input.Phone)) > 0 {
		if err := utils.ValidatePhoneNumber(input.Phone, utils.CountryCode); err != nil {
			return err
		}
		if err := utils.ValidateUnique[Branch](ctx, 0, "phone", input.Phone, id); err != nil {
			return err
		}
	}
	if err := utils.ValidateResourceId[VoucherNumberSeries](ctx, 0, input.VoucherNumberSeriesId); err != nil {
		return errors.New("voucherNumberSeries not found")
	}
	return nil
}

func CreateBranch(ctx context.Context, input *NewBranch) (*Branch, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	branch := Branch{
		VoucherNumberSeriesId: input.VoucherNumberSeriesId,
		Name:                  input.Name,
		Code:                  input.Code,
		Phone:                 input.Phone,
		Address:               input.Address,
		ZoneId:                input.ZoneId,
		TehsilId:              input.TehsilId,
		AutoVerification:      input.AutoVerification,
		IsActive:              utils.NewTrue(),
	}
	if branch.AutoVerification == nil {
		branch.AutoVerification = utils.NewFalse()
	}

	// db action
	db := config.GetDB()
	err := db.WithContext(ctx).Create(&branch).Error
	if err != nil {
		return nil, err
	}
	if rErr := utils.RemoveRedisList[Branch](0); rErr != nil {
		return nil, rErr
	}

	return &branch, nil
}

func UpdateBranch(ctx context.Context, id int, input *NewBranch) (*Branch, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	branch, err := utils.FetchSingleModel[Branch](ctx, id)
	if err != nil {
		return nil, err
	}

	// db action
	db := config.GetDB()
	err = db.WithContext(ctx).Model(&branch).Updates(map[string]interface{}{
		"VoucherNumberSeriesId": input.VoucherNumberSeriesId,
		"Name":                  input.Name,
		"Code":                  input.Code,
		"Phone":                 input.Phone,
		"Address":               input.Address,
		"ZoneId":                input.ZoneId,
		"TehsilId":              input.TehsilId,
		"AutoVerification":      utils.DereferencePtr(input.AutoVerification),
	}).Error
	if err != nil {
		return nil, err
	}
	// verification flag and voucher prefixes are cached per branch
	if rErr := config.RemoveRedisKey("BranchAutoVerification:" + itoa(id)); rErr != nil {
		return nil, rErr
	}
	if rErr := config.RemoveRedisKey("vnsPrefixMap:" + itoa(id)); rErr != nil {
		return nil, rErr
	}
	if rErr := utils.RemoveRedisItem[Branch](id); rErr != nil {
		return nil, rErr
	}
	if rErr := utils.RemoveRedisList[Branch](0); rErr != nil {
		return nil, rErr
	}

	return branch, nil
}

func DeleteBranch(ctx context.Context, id int) (*Branch, error) {

	result, err := utils.FetchSingleModel[Branch](ctx, id)
	if err != nil {
		return nil, err
	}

	// a branch with posted vouchers cannot be removed
	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&Voucher{}).
		Where("branch_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("branch has vouchers")
	}
	if err := db.WithContext(ctx).Model(&SavingAccount{}).
		Where("branch_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("branch has accounts")
	}

	// db action
	err = db.WithContext(ctx).Delete(&result).Error
	if err != nil {
		return nil, err
	}
	if rErr := utils.RemoveRedisItem[Branch](id); rErr != nil {
		return nil, rErr
	}
	if rErr := utils.RemoveRedisList[Branch](0); rErr != nil {
		return nil, rErr
	}

	return result, nil
}

// GetBranch reads through the redis cache; mutations drop the cached entry.
func GetBranch(ctx context.Context, id int) (*Branch, error) {
	cached, err := utils.RetrieveRedis[Branch](id)
	if err != nil {
		return nil, err
	}
	if cached != nil {
		return cached, nil
	}
	result, err := utils.FetchSingleModel[Branch](ctx, id)
	if err != nil {
		return nil, err
	}
	if err := utils.StoreRedis[Branch](result, id); err != nil {
		return nil, err
	}
	return result, nil
}

func GetBranches(ctx context.Context, name *string) ([]*Branch, error) {
	// filtered queries bypass the cache
	if name != nil && len(*name) > 0 {
		db := config.GetDB()
		var results []*Branch
		err := db.WithContext(ctx).
			Where("name LIKE ?", "%"+*name+"%").Order("name").Find(&results).Error
		if err != nil {
			return nil, err
		}
		return results, nil
	}

	results, err := utils.RetrieveRedisList[Branch](0)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results, err = utils.FetchAllModels[Branch](ctx, 0)
		if err != nil {
			return nil, err
		}
		if err := utils.StoreRedisList[Branch](results, 0); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// IsAutoVerification reports whether the branch verifies vouchers at
// creation. Cached in redis; the cache entry is dropped on branch update.
func IsAutoVerification(ctx context.Context, branchId int) (bool, error) {
	var cached *bool
	redisKey := "BranchAutoVerification:" + itoa(branchId)
	exists, err := config.GetRedisObject(redisKey, &cached)
	if err != nil {
		return false, err
	}
	if exists && cached != nil {
		return *cached, nil
	}

	db := config.GetDB()
	var flag *bool
	if err := db.WithContext(ctx).Model(&Branch{}).
		Where("id = ?", branchId).Select("auto_verification").Scan(&flag).Error; err != nil {
		return false, err
	}
	if flag == nil {
		return false, errors.New("branch not found")
	}
	if err := config.SetRedisObject(redisKey, flag, 0); err != nil {
		return false, err
	}
	return *flag, nil
}
