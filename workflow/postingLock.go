package workflow

import (
	"fmt"

	"gorm.io/gorm"
)

// AcquireBranchPostingLock serializes voucher posting per branch across instances using MySQL advisory locks.
// NOTE: GET_LOCK is session-scoped and survives COMMIT, so acquire and release must run on the
// same pinned connection as the posting transaction (gorm Connection), never on the pooled handle.
func AcquireBranchPostingLock(tx *gorm.DB, branchId int) error {
	lockName := fmt.Sprintf("voucher-posting:%d", branchId)
	var ok int
	if err := tx.Raw("SELECT GET_LOCK(?, 30)", lockName).Scan(&ok).Error; err != nil {
		return err
	}
	if ok != 1 {
		return fmt.Errorf("could not acquire posting lock for branch_id=%d", branchId)
	}
	return nil
}

func ReleaseBranchPostingLock(tx *gorm.DB, branchId int) {
	lockName := fmt.Sprintf("voucher-posting:%d", branchId)
	var _ok int
	_ = tx.Raw("SELECT RELEASE_LOCK(?)", lockName).Scan(&_ok).Error
}
