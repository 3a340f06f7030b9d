package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/shopspring/decimal"
)

// SavingProduct configures a class of saving accounts: which account head
// the balances roll up under, the interest rate applied by interest posting
// and the minimum balance a withdrawal may not break.
type SavingProduct struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BranchId      int             `gorm:"index;not null" json:"branch_id"`
	Name          string          `gorm:"size:100;not null" json:"name" binding:"required"`
	AccountHeadId int             `gorm:"index;not null" json:"account_head_id"`
	AccountHead   *AccountHead    `json:"account_head,omitempty"`
	InterestRate  decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0" json:"interest_rate"`
	MinBalance    decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0" json:"min_balance"`
	IsActive      *bool           `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSavingProduct struct {
	Name          string          `json:"name" binding:"required"`
	AccountHeadId int             `json:"account_head_id" binding:"required"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	MinBalance    decimal.Decimal `json:"min_balance"`
}

func (input *NewSavingProduct) validate(ctx context.Context, branchId int, id int) error {
	if err := utils.ValidateUnique[SavingProduct](ctx, branchId, "name", input.Name, id); err != nil {
		return err
	}
	if err := utils.ValidateResourceId[AccountHead](ctx, branchId, input.AccountHeadId); err != nil {
		return errors.New("invalid account head id")
	}
	if input.InterestRate.IsNegative() {
		return errors.New("interest rate cannot be negative")
	}
	if input.MinBalance.IsNegative() {
		return errors.New("minimum balance cannot be negative")
	}
	return nil
}

func CreateSavingProduct(ctx context.Context, input *NewSavingProduct) (*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId, 0); err != nil {
		return nil, err
	}

	db := config.GetDB()
	product := SavingProduct{
		BranchId:      branchId,
		Name:          input.Name,
		AccountHeadId: input.AccountHeadId,
		InterestRate:  input.InterestRate,
		MinBalance:    input.MinBalance,
		IsActive:      utils.NewTrue(),
	}
	if err := db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func UpdateSavingProduct(ctx context.Context, id int, input *NewSavingProduct) (*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	product, err := utils.FetchModel[SavingProduct](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(ctx, branchId, id); err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&product).Updates(map[string]interface{}{
		"Name":          input.Name,
		"AccountHeadId": input.AccountHeadId,
		"InterestRate":  input.InterestRate,
		"MinBalance":    input.MinBalance,
	}).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func DeleteSavingProduct(ctx context.Context, id int) (*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	product, err := utils.FetchModel[SavingProduct](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	var count int64
	if err := db.WithContext(ctx).Model(&SavingAccount{}).
		Where("saving_product_id = ?", id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("saving product has accounts")
	}
	if err = db.WithContext(ctx).Delete(&product).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func ToggleSavingProductActive(ctx context.Context, id int) (*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	product, err := utils.FetchModel[SavingProduct](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	newValue := product.IsActive == nil || !*product.IsActive
	if err := db.WithContext(ctx).Model(&product).
		Update("IsActive", newValue).Error; err != nil {
		return nil, err
	}
	return product, nil
}

func GetSavingProduct(ctx context.Context, id int) (*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[SavingProduct](ctx, branchId, id, "AccountHead")
}

func GetSavingProducts(ctx context.Context, name *string, activeOnly bool) ([]*SavingProduct, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*SavingProduct
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId).Preload("AccountHead")
	if name != nil && len(*name) > 0 {
		dbCtx = dbCtx.Where("name LIKE ?", "%"+*name+"%")
	}
	if activeOnly {
		dbCtx = dbCtx.Where("is_active = ?", true)
	}
	if err := dbCtx.Order("name").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
