package workflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SavingVoucherInput struct {
	VoucherSubType  models.VoucherSubType `json:"voucher_sub_type" binding:"required"`
	DebitAccountId  int                   `json:"debit_account_id" binding:"required"`
	CreditAccountId int                   `json:"credit_account_id" binding:"required"`
	Amount          decimal.Decimal       `json:"amount" binding:"required"`
	VoucherDate     *time.Time            `json:"voucher_date"`
	Narration       string                `json:"narration"`
}

// ValidateSavingVoucherInput rejects malformed postings up front. A zero or
// negative amount is an error, never a no-op.
func ValidateSavingVoucherInput(input SavingVoucherInput) error {
	switch input.VoucherSubType {
	case models.VoucherSubTypeDeposit, models.VoucherSubTypeWithdrawal, models.VoucherSubTypeInterest:
	default:
		return errors.New("invalid voucher sub type")
	}
	if input.DebitAccountId <= 0 {
		return errors.New("debit account id is required")
	}
	if input.CreditAccountId <= 0 {
		return errors.New("credit account id is required")
	}
	if input.DebitAccountId == input.CreditAccountId {
		return errors.New("debit and credit accounts must differ")
	}
	if !input.Amount.IsPositive() {
		return errors.New("amount must be greater than zero")
	}
	return nil
}

// savingSideAccountId picks which leg the saving detail follows: money flows
// into the credited account on deposits and interest, out of the debited
// account on withdrawals.
func savingSideAccountId(input SavingVoucherInput) int {
	switch input.VoucherSubType {
	case models.VoucherSubTypeDeposit, models.VoucherSubTypeInterest:
		return input.CreditAccountId
	default:
		return input.DebitAccountId
	}
}

// BuildVoucherEntries constructs the balanced detail pair and the saving
// detail for a voucher. VoucherId is filled in after the header insert.
func BuildVoucherEntries(branchId int, input SavingVoucherInput, creditHeadCode int64, debitHeadCode int64, valueDate time.Time) (models.VoucherCreditDebitDetail, models.VoucherCreditDebitDetail, models.VoucherSavingDetail) {
	credit := models.VoucherCreditDebitDetail{
		BranchId:      branchId,
		AccountId:     input.CreditAccountId,
		AccHeadCode:   creditHeadCode,
		VoucherAmount: input.Amount,
		EntryType:     models.VoucherEntryTypeCredit,
		VoucherSeqNo:  1,
		ValueDate:     valueDate,
	}
	debit := models.VoucherCreditDebitDetail{
		BranchId:      branchId,
		AccountId:     input.DebitAccountId,
		AccHeadCode:   debitHeadCode,
		VoucherAmount: input.Amount,
		EntryType:     models.VoucherEntryTypeDebit,
		VoucherSeqNo:  2,
		ValueDate:     valueDate,
	}
	saving := models.VoucherSavingDetail{
		BranchId:    branchId,
		AccountId:   savingSideAccountId(input),
		Operation:   models.OperationForSubType(input.VoucherSubType),
		Amount:      input.Amount,
		ValueDate:   valueDate,
		VoucherDate: valueDate,
	}
	return credit, debit, saving
}

func fetchPostingAccount(tx *gorm.DB, branchId int, accountId int) (*models.SavingAccount, error) {
	var account models.SavingAccount
	err := tx.Where("id = ? AND branch_id = ?", accountId, branchId).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("account %d not found", accountId)
		}
		return nil, err
	}
	if account.Status != models.AccountStatusOpen {
		return nil, fmt.Errorf("account %d is closed", accountId)
	}
	return &account, nil
}

// PostSavingVoucher posts a deposit, withdrawal or interest voucher: one
// header, one credit row, one debit row of equal amount and one saving
// detail, all committed in a single transaction. Numbering is serialized
// per branch with a MySQL advisory lock held on the posting connection.
func PostSavingVoucher(ctx context.Context, logger *logrus.Logger, input SavingVoucherInput) (*models.Voucher, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	if err := ValidateSavingVoucherInput(input); err != nil {
		return nil, err
	}

	// Redis lock is best-effort; the MySQL advisory lock below is authoritative.
	redisLock, _ := utils.BranchLock(ctx, branchId, "voucher-posting", "savingVoucherWorkflow.go", "PostSavingVoucher")
	if redisLock != nil {
		defer redisLock.Release(ctx)
	}

	// GET_LOCK and RELEASE_LOCK must run on the same MySQL session, so the
	// whole posting is pinned to one pooled connection.
	db := config.GetDB()
	var voucher *models.Voucher
	err := db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := AcquireBranchPostingLock(conn, branchId); err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "PostSavingVoucher", "AcquireBranchPostingLock", branchId, err)
			return err
		}
		defer ReleaseBranchPostingLock(conn, branchId)

		tx := conn.Begin()
		if tx.Error != nil {
			return tx.Error
		}
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		posted, err := postSavingVoucherTx(ctx, tx, logger, branchId, input)
		if err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit().Error; err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "PostSavingVoucher", "Commit", input, err)
			return err
		}
		voucher = posted
		return nil
	})
	if err != nil {
		return nil, err
	}
	logVoucherPosted(ctx, logger, voucher)
	return voucher, nil
}

func logVoucherPosted(ctx context.Context, logger *logrus.Logger, voucher *models.Voucher) {
	username, _ := utils.GetUsernameFromContext(ctx)
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	logger.WithFields(logrus.Fields{
		"branch_id":      voucher.BranchId,
		"voucher_no":     voucher.VoucherNo,
		"sub_type":       voucher.VoucherSubType,
		"username":       username,
		"correlation_id": cid,
	}).Info("[voucher.posted]")
}

func postSavingVoucherTx(ctx context.Context, tx *gorm.DB, logger *logrus.Logger, branchId int, input SavingVoucherInput) (*models.Voucher, error) {
	if _, err := fetchPostingAccount(tx, branchId, input.CreditAccountId); err != nil {
		return nil, err
	}
	debitAccount, err := fetchPostingAccount(tx, branchId, input.DebitAccountId)
	if err != nil {
		return nil, err
	}
	creditHeadCode, err := models.GetAccountHeadCode(ctx, branchId, input.CreditAccountId)
	if err != nil {
		return nil, err
	}
	debitHeadCode, err := models.GetAccountHeadCode(ctx, branchId, input.DebitAccountId)
	if err != nil {
		return nil, err
	}

	if input.VoucherSubType == models.VoucherSubTypeWithdrawal {
		if err := checkWithdrawalFloor(tx, branchId, debitAccount, input.Amount); err != nil {
			return nil, err
		}
	}

	valueDate := time.Now().UTC()
	if input.VoucherDate != nil {
		valueDate = *input.VoucherDate
	}
	valueDate = utils.StartOfDay(valueDate)

	voucherNo, err := NextVoucherNo(tx, branchId)
	if err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "NextVoucherNo", branchId, err)
		return nil, err
	}

	status := models.VoucherStatusAwaiting
	verifiedBy := 0
	userId, _ := utils.GetUserIdFromContext(ctx)
	auto, err := models.IsAutoVerification(ctx, branchId)
	if err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "IsAutoVerification", branchId, err)
		return nil, err
	}
	if auto {
		status = models.VoucherStatusVerified
		verifiedBy = userId
	}

	voucher := models.Voucher{
		BranchId:         branchId,
		VoucherNo:        voucherNo,
		VoucherType:      models.VoucherTypeSaving,
		VoucherSubType:   input.VoucherSubType,
		VoucherDate:      valueDate,
		VoucherStatus:    status,
		VoucherNarration: input.Narration,
		AddedBy:          userId,
		VerifiedBy:       verifiedBy,
	}
	if err := tx.Create(&voucher).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "Create Voucher", voucher, err)
		return nil, err
	}

	credit, debit, saving := BuildVoucherEntries(branchId, input, creditHeadCode, debitHeadCode, valueDate)
	credit.VoucherId = voucher.ID
	credit.EntryStatus = status
	debit.VoucherId = voucher.ID
	debit.EntryStatus = status
	if err := tx.Create(&credit).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "Create Credit Detail", credit, err)
		return nil, err
	}
	if err := tx.Create(&debit).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "Create Debit Detail", debit, err)
		return nil, err
	}

	saving.VoucherId = voucher.ID
	if saving.AccountId == credit.AccountId {
		saving.VoucherAccDetailId = credit.ID
	} else {
		saving.VoucherAccDetailId = debit.ID
	}
	if err := tx.Create(&saving).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "postSavingVoucherTx", "Create Saving Detail", saving, err)
		return nil, err
	}

	voucher.Details = []models.VoucherCreditDebitDetail{credit, debit}
	voucher.SavingDetails = []models.VoucherSavingDetail{saving}
	return &voucher, nil
}

// checkWithdrawalFloor blocks withdrawals that would take the account below
// its product's minimum balance. The balance is computed through tx so the
// repost path sees its own reversal rows.
func checkWithdrawalFloor(tx *gorm.DB, branchId int, account *models.SavingAccount, amount decimal.Decimal) error {
	var product models.SavingProduct
	if err := tx.Where("id = ? AND branch_id = ?", account.SavingProductId, branchId).First(&product).Error; err != nil {
		return err
	}
	var result struct {
		Balance decimal.Decimal
	}
	err := tx.Model(&models.VoucherSavingDetail{}).
		Select("COALESCE(SUM(CASE WHEN operation = 'SW' THEN -amount ELSE amount END), 0) AS balance").
		Where("account_id = ? AND branch_id = ?", account.ID, branchId).
		Scan(&result).Error
	if err != nil {
		return err
	}
	if result.Balance.Sub(amount).LessThan(product.MinBalance) {
		return fmt.Errorf("withdrawal would break minimum balance of %s", product.MinBalance.String())
	}
	return nil
}

// RepostSavingVoucher is the update path for a posted voucher. The original
// rows are never mutated: compensating rows reverse them and a fresh pair is
// appended, all under the same voucher number and transaction.
func RepostSavingVoucher(ctx context.Context, logger *logrus.Logger, voucherId int, input SavingVoucherInput) (*models.Voucher, error) {
	branchId, ok := utils.GetBranchIdFromContext(ctx)
	if !ok || branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	if err := ValidateSavingVoucherInput(input); err != nil {
		return nil, err
	}

	redisLock, _ := utils.BranchLock(ctx, branchId, "voucher-posting", "savingVoucherWorkflow.go", "RepostSavingVoucher")
	if redisLock != nil {
		defer redisLock.Release(ctx)
	}

	db := config.GetDB()
	var replacement *models.Voucher
	err := db.WithContext(ctx).Connection(func(conn *gorm.DB) error {
		if err := AcquireBranchPostingLock(conn, branchId); err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "RepostSavingVoucher", "AcquireBranchPostingLock", branchId, err)
			return err
		}
		defer ReleaseBranchPostingLock(conn, branchId)

		tx := conn.Begin()
		if tx.Error != nil {
			return tx.Error
		}
		defer func() {
			if r := recover(); r != nil {
				tx.Rollback()
				panic(r)
			}
		}()

		var voucher models.Voucher
		if err := tx.Preload("Details").Preload("SavingDetails").
			Where("id = ? AND branch_id = ?", voucherId, branchId).First(&voucher).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("voucher not found")
			}
			return err
		}
		if voucher.VoucherType != models.VoucherTypeSaving {
			tx.Rollback()
			return errors.New("not a saving voucher")
		}

		if err := reverseVoucherRows(tx, logger, &voucher); err != nil {
			tx.Rollback()
			return err
		}

		reposted, err := repostVoucherRows(ctx, tx, logger, branchId, &voucher, input)
		if err != nil {
			tx.Rollback()
			return err
		}
		if err := tx.Commit().Error; err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "RepostSavingVoucher", "Commit", input, err)
			return err
		}
		replacement = reposted
		return nil
	})
	if err != nil {
		return nil, err
	}
	logVoucherPosted(ctx, logger, replacement)
	return replacement, nil
}

// reverseVoucherRows appends compensating detail rows: each live row gets a
// mirror with Cr and Dr swapped, each saving detail a mirror with the
// opposite operation. The signed sums return to zero before the repost.
func reverseVoucherRows(tx *gorm.DB, logger *logrus.Logger, voucher *models.Voucher) error {
	maxSeq := 0
	for _, d := range voucher.Details {
		if d.VoucherSeqNo > maxSeq {
			maxSeq = d.VoucherSeqNo
		}
	}
	for _, d := range voucher.Details {
		entryType := models.VoucherEntryTypeCredit
		if d.EntryType == models.VoucherEntryTypeCredit {
			entryType = models.VoucherEntryTypeDebit
		}
		maxSeq++
		reversal := models.VoucherCreditDebitDetail{
			BranchId:      d.BranchId,
			VoucherId:     d.VoucherId,
			AccountId:     d.AccountId,
			AccHeadCode:   d.AccHeadCode,
			VoucherAmount: d.VoucherAmount,
			EntryType:     entryType,
			VoucherSeqNo:  maxSeq,
			ValueDate:     d.ValueDate,
			EntryStatus:   voucher.VoucherStatus,
		}
		if err := tx.Create(&reversal).Error; err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "reverseVoucherRows", "Create Reversal Detail", reversal, err)
			return err
		}
	}
	for _, s := range voucher.SavingDetails {
		operation := models.SavingOperationWithdrawal
		if s.Operation == models.SavingOperationWithdrawal {
			operation = models.SavingOperationDeposit
		}
		reversal := models.VoucherSavingDetail{
			BranchId:    s.BranchId,
			VoucherId:   s.VoucherId,
			AccountId:   s.AccountId,
			Operation:   operation,
			Amount:      s.Amount,
			ValueDate:   s.ValueDate,
			VoucherDate: s.VoucherDate,
		}
		if err := tx.Create(&reversal).Error; err != nil {
			config.LogError(logger, "savingVoucherWorkflow.go", "reverseVoucherRows", "Create Reversal Saving Detail", reversal, err)
			return err
		}
	}
	return nil
}

func repostVoucherRows(ctx context.Context, tx *gorm.DB, logger *logrus.Logger, branchId int, voucher *models.Voucher, input SavingVoucherInput) (*models.Voucher, error) {
	if _, err := fetchPostingAccount(tx, branchId, input.CreditAccountId); err != nil {
		return nil, err
	}
	debitAccount, err := fetchPostingAccount(tx, branchId, input.DebitAccountId)
	if err != nil {
		return nil, err
	}
	creditHeadCode, err := models.GetAccountHeadCode(ctx, branchId, input.CreditAccountId)
	if err != nil {
		return nil, err
	}
	debitHeadCode, err := models.GetAccountHeadCode(ctx, branchId, input.DebitAccountId)
	if err != nil {
		return nil, err
	}

	// Reversal rows are already in tx, so the floor check runs against the
	// post-reversal balance.
	if input.VoucherSubType == models.VoucherSubTypeWithdrawal {
		if err := checkWithdrawalFloor(tx, branchId, debitAccount, input.Amount); err != nil {
			return nil, err
		}
	}

	valueDate := voucher.VoucherDate
	if input.VoucherDate != nil {
		valueDate = utils.StartOfDay(*input.VoucherDate)
	}

	maxSeq := 0
	for _, d := range voucher.Details {
		if d.VoucherSeqNo > maxSeq {
			maxSeq = d.VoucherSeqNo
		}
	}
	// The reversal pass above already appended len(Details) rows.
	maxSeq += len(voucher.Details)

	credit, debit, saving := BuildVoucherEntries(branchId, input, creditHeadCode, debitHeadCode, valueDate)
	credit.VoucherId = voucher.ID
	credit.VoucherSeqNo = maxSeq + 1
	credit.EntryStatus = voucher.VoucherStatus
	debit.VoucherId = voucher.ID
	debit.VoucherSeqNo = maxSeq + 2
	debit.EntryStatus = voucher.VoucherStatus
	if err := tx.Create(&credit).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "repostVoucherRows", "Create Credit Detail", credit, err)
		return nil, err
	}
	if err := tx.Create(&debit).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "repostVoucherRows", "Create Debit Detail", debit, err)
		return nil, err
	}

	saving.VoucherId = voucher.ID
	saving.VoucherDate = valueDate
	if saving.AccountId == credit.AccountId {
		saving.VoucherAccDetailId = credit.ID
	} else {
		saving.VoucherAccDetailId = debit.ID
	}
	if err := tx.Create(&saving).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "repostVoucherRows", "Create Saving Detail", saving, err)
		return nil, err
	}

	if err := tx.Model(voucher).Updates(map[string]interface{}{
		"VoucherSubType":   input.VoucherSubType,
		"VoucherDate":      valueDate,
		"VoucherNarration": input.Narration,
	}).Error; err != nil {
		config.LogError(logger, "savingVoucherWorkflow.go", "repostVoucherRows", "Update Voucher Header", voucher, err)
		return nil, err
	}

	voucher.VoucherSubType = input.VoucherSubType
	voucher.VoucherDate = valueDate
	voucher.VoucherNarration = input.Narration
	return voucher, nil
}

// PostInterestVoucher credits accrued interest to a saving account. Same
// machinery as a deposit with the interest sub-type and operation.
func PostInterestVoucher(ctx context.Context, logger *logrus.Logger, input SavingVoucherInput) (*models.Voucher, error) {
	input.VoucherSubType = models.VoucherSubTypeInterest
	return PostSavingVoucher(ctx, logger, input)
}
