package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/shopspring/decimal"
)

// VoucherModuleSaving is the number-series module name saving vouchers
// draw their display prefix from.
const VoucherModuleSaving = "Saving"

// Voucher is the transaction header. One row per posting; the double-entry
// rows hang off it as Details. Identity is branch-scoped: voucher_no is a
// per-branch sequence guarded by a unique index, so a numbering race loses
// at commit instead of producing duplicates.
type Voucher struct {
	ID               int                        `gorm:"primary_key" json:"id"`
	BranchId         int                        `gorm:"index;not null;uniqueIndex:idx_branch_voucher_no" json:"branch_id"`
	VoucherNo        int64                      `gorm:"not null;uniqueIndex:idx_branch_voucher_no" json:"voucher_no"`
	VoucherType      VoucherType                `gorm:"type:enum('S');default:'S'" json:"voucher_type"`
	VoucherSubType   VoucherSubType             `gorm:"type:enum('D','W','I');not null" json:"voucher_sub_type"`
	VoucherDate      time.Time                  `gorm:"not null" json:"voucher_date"`
	VoucherStatus    VoucherStatus              `gorm:"type:enum('A','V');default:'A'" json:"voucher_status"`
	VoucherNarration string                     `gorm:"type:text" json:"voucher_narration"`
	AddedBy          int                        `gorm:"not null;default:0" json:"added_by"`
	VerifiedBy       int                        `gorm:"not null;default:0" json:"verified_by"`
	Details          []VoucherCreditDebitDetail `gorm:"foreignKey:VoucherId" json:"details"`
	SavingDetails    []VoucherSavingDetail      `gorm:"foreignKey:VoucherId" json:"saving_details"`
	CreatedAt        time.Time                  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time                  `gorm:"autoUpdateTime" json:"updated_at"`
}

// VoucherCreditDebitDetail is one side of the double-entry pair. A posted
// voucher always carries exactly one Cr and one Dr row with equal amounts.
type VoucherCreditDebitDetail struct {
	ID            int              `gorm:"primary_key" json:"id"`
	BranchId      int              `gorm:"index;not null" json:"branch_id"`
	VoucherId     int              `gorm:"index;not null" json:"voucher_id"`
	AccountId     int              `gorm:"index;not null" json:"account_id"`
	AccHeadCode   int64            `gorm:"not null" json:"acc_head_code"`
	VoucherAmount decimal.Decimal  `gorm:"type:decimal(20,4);not null" json:"voucher_amount"`
	EntryType     VoucherEntryType `gorm:"type:enum('Cr','Dr');not null" json:"entry_type"`
	VoucherSeqNo  int              `gorm:"not null" json:"voucher_seq_no"`
	ValueDate     time.Time        `gorm:"not null" json:"value_date"`
	EntryStatus   VoucherStatus    `gorm:"type:enum('A','V');default:'A'" json:"entry_status"`
	CreatedAt     time.Time        `gorm:"autoCreateTime" json:"created_at"`
}

// VoucherSavingDetail records the saving-account effect of a voucher,
// distinct from the generic ledger rows. VoucherAccDetailId points at the
// Cr/Dr row belonging to the saving account itself.
type VoucherSavingDetail struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	BranchId           int             `gorm:"index;not null" json:"branch_id"`
	VoucherId          int             `gorm:"index;not null" json:"voucher_id"`
	VoucherAccDetailId int             `gorm:"not null" json:"voucher_acc_detail_id"`
	AccountId          int             `gorm:"index;not null" json:"account_id"`
	Operation          SavingOperation `gorm:"type:enum('SD','SW','IP');not null" json:"operation"`
	Amount             decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"amount"`
	ValueDate          time.Time       `gorm:"not null" json:"value_date"`
	VoucherDate        time.Time       `gorm:"not null" json:"voucher_date"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func GetVoucher(ctx context.Context, branchId int, id int) (*Voucher, error) {
	return utils.FetchModel[Voucher](ctx, branchId, id, "Details", "SavingDetails")
}

// DisplayVoucherNo renders the voucher number with the branch's configured
// prefix, e.g. "SV-42". Falls back to the bare number when the branch has
// no prefix mapping for the module.
func DisplayVoucherNo(ctx context.Context, v *Voucher) string {
	prefix, err := getVoucherPrefix(ctx, v.BranchId, VoucherModuleSaving)
	if err != nil {
		prefix = ""
	}
	return prefix + fmt.Sprint(v.VoucherNo)
}

// GetVouchers lists a branch's vouchers, newest first, optionally bounded by
// voucher date.
func GetVouchers(ctx context.Context, branchId int, fromDate *time.Time, toDate *time.Time, status *VoucherStatus, limit int) ([]*Voucher, error) {
	if branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	db := config.GetDB()
	dbCtx := db.WithContext(ctx).Preload("Details").Preload("SavingDetails").
		Where("branch_id = ?", branchId)
	if fromDate != nil && toDate != nil {
		dbCtx = dbCtx.Where("voucher_date BETWEEN ? AND ?", fromDate, toDate)
	}
	if status != nil && *status != "" {
		dbCtx = dbCtx.Where("voucher_status = ?", status)
	}

	var results []*Voucher
	if err := dbCtx.Order("voucher_no DESC").Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// VerifyVoucher performs the A -> V transition. Verification is a header
// state change only; the posted rows are immutable.
func VerifyVoucher(ctx context.Context, branchId int, id int) (*Voucher, error) {
	userId, ok := utils.GetUserIdFromContext(ctx)
	if !ok {
		return nil, errors.New("user is required")
	}

	voucher, err := utils.FetchModel[Voucher](ctx, branchId, id)
	if err != nil {
		return nil, errors.New("voucher not found")
	}
	if voucher.VoucherStatus == VoucherStatusVerified {
		return nil, errors.New("voucher already verified")
	}

	db := config.GetDB()
	tx := db.Begin()
	if err := tx.WithContext(ctx).Model(&voucher).Updates(map[string]interface{}{
		"VoucherStatus": VoucherStatusVerified,
		"VerifiedBy":    userId,
	}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.WithContext(ctx).Model(&VoucherCreditDebitDetail{}).
		Where("voucher_id = ?", voucher.ID).
		Update("entry_status", VoucherStatusVerified).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	voucher.VoucherStatus = VoucherStatusVerified
	voucher.VerifiedBy = userId
	return voucher, nil
}
