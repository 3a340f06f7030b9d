package workflow

import (
	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"gorm.io/gorm"
)

// NextVoucherNo returns max(voucher_no)+1 for the branch. Callers must hold
// the branch posting lock on tx's connection; the unique index on
// (branch_id, voucher_no) backstops any caller that does not.
func NextVoucherNo(tx *gorm.DB, branchId int) (int64, error) {
	var maxNo int64
	err := tx.Model(&models.Voucher{}).
		Where("branch_id = ?", branchId).
		Select("COALESCE(MAX(voucher_no), 0)").
		Scan(&maxNo).Error
	if err != nil {
		return 0, err
	}
	return maxNo + 1, nil
}
