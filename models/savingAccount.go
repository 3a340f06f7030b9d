package models

import (
	"context"
	"errors"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/shopspring/decimal"
)

type SavingAccount struct {
	ID              int            `gorm:"primary_key" json:"id"`
	BranchId        int            `gorm:"index;not null;uniqueIndex:idx_branch_account_no" json:"branch_id"`
	AccountNo       int64          `gorm:"not null;uniqueIndex:idx_branch_account_no" json:"account_no"`
	MemberId        int            `gorm:"index;not null" json:"member_id"`
	Member          *Member        `json:"member,omitempty"`
	SavingProductId int            `gorm:"index;not null" json:"saving_product_id"`
	SavingProduct   *SavingProduct `json:"saving_product,omitempty"`
	Status          AccountStatus  `gorm:"type:enum('O','C');not null;default:'O'" json:"status"`
	OpenDate        time.Time      `json:"open_date"`
	CloseDate       *time.Time     `json:"close_date,omitempty"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

type NewSavingAccount struct {
	MemberId        int        `json:"member_id" binding:"required"`
	SavingProductId int        `json:"saving_product_id" binding:"required"`
	OpenDate        *time.Time `json:"open_date"`
}

func (input *NewSavingAccount) validate(ctx context.Context, branchId int) error {
	if err := utils.ValidateResourceId[Member](ctx, branchId, input.MemberId); err != nil {
		return errors.New("invalid member id")
	}
	product, err := utils.FetchModel[SavingProduct](ctx, branchId, input.SavingProductId)
	if err != nil {
		return errors.New("invalid saving product id")
	}
	if product.IsActive != nil && !*product.IsActive {
		return errors.New("saving product is inactive")
	}
	return nil
}

// OpenSavingAccount allocates the next per-branch account number and creates
// the account in open status.
func OpenSavingAccount(ctx context.Context, input *NewSavingAccount) (*SavingAccount, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	if err := input.validate(ctx, branchId); err != nil {
		return nil, err
	}

	accountNo, err := utils.GetSequence[SavingAccount](ctx, branchId, "account_no")
	if err != nil {
		return nil, err
	}

	openDate := time.Now().UTC()
	if input.OpenDate != nil {
		openDate = *input.OpenDate
	}

	db := config.GetDB()
	account := SavingAccount{
		BranchId:        branchId,
		AccountNo:       accountNo,
		MemberId:        input.MemberId,
		SavingProductId: input.SavingProductId,
		Status:          AccountStatusOpen,
		OpenDate:        utils.StartOfDay(openDate),
	}
	if err := db.WithContext(ctx).Create(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// CloseSavingAccount moves an open account to closed status. The balance
// must already be zero; closure never moves money by itself.
func CloseSavingAccount(ctx context.Context, id int) (*SavingAccount, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	account, err := utils.FetchModel[SavingAccount](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if account.Status == AccountStatusClosed {
		return nil, errors.New("account is already closed")
	}
	balance, err := GetAccountBalance(ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	if !balance.IsZero() {
		return nil, errors.New("account balance must be zero before closing")
	}

	now := time.Now().UTC()
	if err := db.WithContext(ctx).Model(&account).Updates(map[string]interface{}{
		"Status":    AccountStatusClosed,
		"CloseDate": &now,
	}).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func DeleteSavingAccount(ctx context.Context, id int) (*SavingAccount, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	account, err := utils.FetchModel[SavingAccount](ctx, branchId, id)
	if err != nil {
		return nil, err
	}
	count, err := utils.ResourceCountWhere[VoucherSavingDetail](ctx, branchId, "account_id = ?", id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("account has posted vouchers")
	}
	if err = db.WithContext(ctx).Delete(&account).Error; err != nil {
		return nil, err
	}
	return account, nil
}

func GetSavingAccount(ctx context.Context, id int) (*SavingAccount, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	return utils.FetchModel[SavingAccount](ctx, branchId, id, "Member", "SavingProduct")
}

func GetSavingAccounts(ctx context.Context, memberId *int, status *AccountStatus) ([]*SavingAccount, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}

	db := config.GetDB()
	var results []*SavingAccount
	dbCtx := db.WithContext(ctx).Where("branch_id = ?", branchId).
		Preload("Member").Preload("SavingProduct")
	if memberId != nil && *memberId > 0 {
		dbCtx = dbCtx.Where("member_id = ?", *memberId)
	}
	if status != nil {
		dbCtx = dbCtx.Where("status = ?", *status)
	}
	if err := dbCtx.Order("account_no").Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// GetAccountHeadCode resolves the ledger head code an account's movements
// post under, via the account's saving product.
func GetAccountHeadCode(ctx context.Context, branchId int, accountId int) (int64, error) {
	db := config.GetDB()
	var headCode int64
	err := db.WithContext(ctx).Model(&SavingAccount{}).
		Select("account_heads.head_code").
		Joins("JOIN saving_products ON saving_products.id = saving_accounts.saving_product_id").
		Joins("JOIN account_heads ON account_heads.id = saving_products.account_head_id").
		Where("saving_accounts.id = ? AND saving_accounts.branch_id = ?", accountId, branchId).
		Scan(&headCode).Error
	if err != nil {
		return 0, err
	}
	if headCode == 0 {
		return 0, errors.New("account head not configured for account")
	}
	return headCode, nil
}

// GetAccountBalance sums the account's posted saving movements: deposits and
// interest add, withdrawals subtract. Reversal vouchers carry the opposite
// operation, so a plain signed sum yields the live balance.
func GetAccountBalance(ctx context.Context, branchId int, accountId int) (decimal.Decimal, error) {
	db := config.GetDB()
	var result struct {
		Balance decimal.Decimal
	}
	err := db.WithContext(ctx).Model(&VoucherSavingDetail{}).
		Select("COALESCE(SUM(CASE WHEN operation = 'SW' THEN -amount ELSE amount END), 0) AS balance").
		Where("account_id = ? AND branch_id = ?", accountId, branchId).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Balance, nil
}
