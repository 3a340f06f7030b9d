package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
)

type AccountHeadType string

const (
	AccountHeadTypeAsset     AccountHeadType = "Asset"
	AccountHeadTypeLiability AccountHeadType = "Liability"
	AccountHeadTypeIncome    AccountHeadType = "Income"
	AccountHeadTypeExpense   AccountHeadType = "Expense"
)

// AccountHead is the ledger classification a detail row posts against.
// HeadCode is the stable numeric code carried on VoucherCreditDebitDetail.
type AccountHead struct {
	ID        int             `gorm:"primary_key" json:"id"`
	BranchId  int             `gorm:"index;not null" json:"branch_id"`
	HeadCode  int64           `gorm:"index;not null" json:"head_code" binding:"required"`
	Name      string          `gorm:"size:100;not null" json:"name" binding:"required"`
	HeadType  AccountHeadType `gorm:"type:enum('Asset','Liability','Income','Expense');not null" json:"head_type"`
	IsActive  *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewAccountHead struct {
	BranchId int             `json:"branch_id" binding:"required"`
	HeadCode int64           `json:"head_code" binding:"required"`
	Name     string          `json:"name" binding:"required"`
	HeadType AccountHeadType `json:"head_type" binding:"required"`
}

// validate input for both create & update. (id = 0 for create)

func (input *NewAccountHead) validate(ctx context.Context, id int) error {
	if err := utils.ValidateResourceId[Branch](ctx, 0, input.BranchId); err != nil {
		return errors.New("branch not found")
	}
	if err := utils.ValidateUnique[AccountHead](ctx, input.BranchId, "name", input.Name, id); err != nil {
		return err
	}
	if err := utils.ValidateUnique[AccountHead](ctx, input.BranchId, "head_code", input.HeadCode, id); err != nil {
		return err
	}
	return nil
}

func CreateAccountHead(ctx context.Context, input *NewAccountHead) (*AccountHead, error) {

	if err := input.validate(ctx, 0); err != nil {
		return nil, err
	}

	head := AccountHead{
		BranchId: input.BranchId,
		HeadCode: input.HeadCode,
		Name:     input.Name,
		HeadType: input.HeadType,
		IsActive: utils.NewTrue(),
	}

	db := config.GetDB()
	if err := db.WithContext(ctx).Create(&head).Error; err != nil {
		return nil, err
	}
	return &head, nil
}

func UpdateAccountHead(ctx context.Context, id int, input *NewAccountHead) (*AccountHead, error) {

	if err := input.validate(ctx, id); err != nil {
		return nil, err
	}

	head, err := utils.FetchModel[AccountHead](ctx, input.BranchId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	err = db.WithContext(ctx).Model(&head).Updates(map[string]interface{}{
		"HeadCode": input.HeadCode,
		"Name":     input.Name,
		"HeadType": input.HeadType,
	}).Error
	if err != nil {
		return nil, err
	}
	return head, nil
}

func DeleteAccountHead(ctx context.Context, branchId int, id int) (*AccountHead, error) {

	result, err := utils.FetchModel[AccountHead](ctx, branchId, id)
	if err != nil {
		return nil, err
	}

	db := config.GetDB()
	var count int64
	if err := db.WithContext(ctx).Model(&SavingProduct{}).
		Where("account_head_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("account head has saving products")
	}
	if err := db.WithContext(ctx).Model(&VoucherCreditDebitDetail{}).
		Where("acc_head_code = ? AND branch_id = ?", result.HeadCode, branchId).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("account head has posted entries")
	}

	if err := db.WithContext(ctx).Delete(&result).Error; err != nil {
		return nil, err
	}
	return result, nil
}

func GetAccountHead(ctx context.Context, branchId int, id int) (*AccountHead, error) {
	return utils.FetchModel[AccountHead](ctx, branchId, id)
}

func GetAccountHeads(ctx context.Context, branchId int, name *string) ([]*AccountHead, error) {
	if branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	db := config.GetDB()
	var results []*AccountHead

	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId)
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	err := dbCtx.Order("head_code").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}
