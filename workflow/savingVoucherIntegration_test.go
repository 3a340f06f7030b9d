package workflow_test

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/workflow"
	"github.com/shopspring/decimal"
)

func TestSavingVoucherPostingLifecycle(t *testing.T) {
	if strings.TrimSpace(os.Getenv("INTEGRATION_TESTS")) == "" {
		t.Skip("set INTEGRATION_TESTS=1 to run integration tests (requires docker)")
	}

	ctx := context.Background()

	redisName, redisPort := startRedisContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(redisName) })

	mysqlName, mysqlPort := startMySQLContainer(t)
	t.Cleanup(func() { _ = dockerRmForce(mysqlName) })

	t.Setenv("REDIS_ADDRESS", fmt.Sprintf("127.0.0.1:%s", redisPort))
	t.Setenv("DB_USER", "root")
	t.Setenv("DB_PASSWORD", "testpw")
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", mysqlPort)
	t.Setenv("DB_NAME", "coopbank_test")

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	if err := config.ClearRedis(config.GetRedisContext()); err != nil {
		t.Fatalf("ClearRedis: %v", err)
	}
	models.MigrateTable()

	logger := config.GetLogger()

	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetUsernameInContext(ctx, "test@local")
	ctx = utils.SetIsAdminInContext(ctx, true)

	series, err := models.CreateVoucherNumberSeries(ctx, &models.NewVoucherNumberSeries{
		Name: "Head Office Series",
		Modules: []models.NewVoucherNumberSeriesModule{
			{ModuleName: "Saving", Prefix: "SV-"},
		},
	})
	if err != nil {
		t.Fatalf("CreateVoucherNumberSeries: %v", err)
	}

	branch, err := models.CreateBranch(ctx, &models.NewBranch{
		VoucherNumberSeriesId: series.ID,
		Name:                  "Head Office",
		Code:                  "HO",
	})
	if err != nil {
		t.Fatalf("CreateBranch: %v", err)
	}
	ctx = utils.SetBranchIdInContext(ctx, branch.ID)

	zone, err := models.CreateZone(ctx, &models.NewZone{Name: "North"})
	if err != nil {
		t.Fatalf("CreateZone: %v", err)
	}
	tehsil, err := models.CreateTehsil(ctx, &models.NewTehsil{Name: "Central"})
	if err != nil {
		t.Fatalf("CreateTehsil: %v", err)
	}
	village, err := models.CreateVillage(ctx, &models.NewVillage{
		Name: "Rampur", ZoneId: zone.ID, TehsilId: tehsil.ID,
	})
	if err != nil {
		t.Fatalf("CreateVillage: %v", err)
	}

	savingHead, err := models.CreateAccountHead(ctx, &models.NewAccountHead{
		BranchId: branch.ID, HeadCode: 40001, Name: "Members Saving", HeadType: models.AccountHeadTypeLiability,
	})
	if err != nil {
		t.Fatalf("CreateAccountHead saving: %v", err)
	}
	cashHead, err := models.CreateAccountHead(ctx, &models.NewAccountHead{
		BranchId: branch.ID, HeadCode: 10001, Name: "Cash In Hand", HeadType: models.AccountHeadTypeAsset,
	})
	if err != nil {
		t.Fatalf("CreateAccountHead cash: %v", err)
	}

	savingProduct, err := models.CreateSavingProduct(ctx, &models.NewSavingProduct{
		Name: "Regular Saving", AccountHeadId: savingHead.ID,
		InterestRate: decimal.NewFromFloat(4.5), MinBalance: decimal.NewFromInt(100),
	})
	if err != nil {
		t.Fatalf("CreateSavingProduct: %v", err)
	}
	cashProduct, err := models.CreateSavingProduct(ctx, &models.NewSavingProduct{
		Name: "Branch Cash", AccountHeadId: cashHead.ID,
	})
	if err != nil {
		t.Fatalf("CreateSavingProduct cash: %v", err)
	}

	member, err := models.CreateMember(ctx, &models.NewMember{
		Name: "Ram Lal", VillageId: village.ID,
	})
	if err != nil {
		t.Fatalf("CreateMember: %v", err)
	}
	officeMember, err := models.CreateMember(ctx, &models.NewMember{
		Name: "Branch Office", VillageId: village.ID,
	})
	if err != nil {
		t.Fatalf("CreateMember office: %v", err)
	}
	if member.MemberNo == officeMember.MemberNo {
		t.Fatalf("member numbers collided: %d", member.MemberNo)
	}

	savingAccount, err := models.OpenSavingAccount(ctx, &models.NewSavingAccount{
		MemberId: member.ID, SavingProductId: savingProduct.ID,
	})
	if err != nil {
		t.Fatalf("OpenSavingAccount: %v", err)
	}
	cashAccount, err := models.OpenSavingAccount(ctx, &models.NewSavingAccount{
		MemberId: officeMember.ID, SavingProductId: cashProduct.ID,
	})
	if err != nil {
		t.Fatalf("OpenSavingAccount cash: %v", err)
	}

	// Deposit: credit the member account, debit branch cash.
	deposit, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  cashAccount.ID,
		CreditAccountId: savingAccount.ID,
		Amount:          decimal.NewFromInt(500),
		Narration:       "opening deposit",
	})
	if err != nil {
		t.Fatalf("PostSavingVoucher deposit: %v", err)
	}
	if deposit.VoucherNo != 1 {
		t.Errorf("first voucher no = %d, want 1", deposit.VoucherNo)
	}
	if len(deposit.Details) != 2 {
		t.Fatalf("deposit detail rows = %d, want 2", len(deposit.Details))
	}
	if !deposit.Details[0].VoucherAmount.Equal(deposit.Details[1].VoucherAmount) {
		t.Errorf("unbalanced deposit: %s vs %s", deposit.Details[0].VoucherAmount, deposit.Details[1].VoucherAmount)
	}
	if len(deposit.SavingDetails) != 1 || deposit.SavingDetails[0].Operation != models.SavingOperationDeposit {
		t.Fatalf("deposit saving detail = %+v, want one SD row", deposit.SavingDetails)
	}
	if deposit.VoucherStatus != models.VoucherStatusAwaiting {
		t.Errorf("deposit status = %q, want A (branch auto-verification off)", deposit.VoucherStatus)
	}

	balance, err := models.GetAccountBalance(ctx, branch.ID, savingAccount.ID)
	if err != nil {
		t.Fatalf("GetAccountBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(500)) {
		t.Errorf("balance after deposit = %s, want 500", balance)
	}

	// Zero-amount posting must be rejected, not saved as an empty voucher.
	if _, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  cashAccount.ID,
		CreditAccountId: savingAccount.ID,
		Amount:          decimal.Zero,
	}); err == nil {
		t.Fatalf("zero-amount posting was accepted")
	}

	// Withdrawal: debit the member account, credit branch cash.
	withdrawal, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeWithdrawal,
		DebitAccountId:  savingAccount.ID,
		CreditAccountId: cashAccount.ID,
		Amount:          decimal.NewFromInt(200),
	})
	if err != nil {
		t.Fatalf("PostSavingVoucher withdrawal: %v", err)
	}
	if withdrawal.VoucherNo != 2 {
		t.Errorf("second voucher no = %d, want 2", withdrawal.VoucherNo)
	}
	if withdrawal.SavingDetails[0].Operation != models.SavingOperationWithdrawal {
		t.Errorf("withdrawal operation = %q, want SW", withdrawal.SavingDetails[0].Operation)
	}

	balance, err = models.GetAccountBalance(ctx, branch.ID, savingAccount.ID)
	if err != nil {
		t.Fatalf("GetAccountBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(300)) {
		t.Errorf("balance after withdrawal = %s, want 300", balance)
	}

	// A withdrawal breaking the product minimum balance (100) must fail.
	if _, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeWithdrawal,
		DebitAccountId:  savingAccount.ID,
		CreditAccountId: cashAccount.ID,
		Amount:          decimal.NewFromInt(250),
	}); err == nil {
		t.Fatalf("withdrawal below minimum balance was accepted")
	}

	// Repost the withdrawal with a corrected amount; number must not change.
	reposted, err := workflow.RepostSavingVoucher(ctx, logger, withdrawal.ID, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeWithdrawal,
		DebitAccountId:  savingAccount.ID,
		CreditAccountId: cashAccount.ID,
		Amount:          decimal.NewFromInt(150),
		Narration:       "corrected amount",
	})
	if err != nil {
		t.Fatalf("RepostSavingVoucher: %v", err)
	}
	if reposted.VoucherNo != withdrawal.VoucherNo {
		t.Errorf("repost changed voucher no: %d -> %d", withdrawal.VoucherNo, reposted.VoucherNo)
	}

	balance, err = models.GetAccountBalance(ctx, branch.ID, savingAccount.ID)
	if err != nil {
		t.Fatalf("GetAccountBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(350)) {
		t.Errorf("balance after repost = %s, want 350", balance)
	}

	// Interest posting credits the member account with operation IP.
	interest, err := workflow.PostInterestVoucher(ctx, logger, workflow.SavingVoucherInput{
		DebitAccountId:  cashAccount.ID,
		CreditAccountId: savingAccount.ID,
		Amount:          decimal.NewFromInt(15),
	})
	if err != nil {
		t.Fatalf("PostInterestVoucher: %v", err)
	}
	if interest.SavingDetails[0].Operation != models.SavingOperationInterest {
		t.Errorf("interest operation = %q, want IP", interest.SavingDetails[0].Operation)
	}

	// Reposting the withdrawal with a larger amount is checked against the
	// post-reversal balance. Balance is 365, reversing the 150 withdrawal
	// frees 515, floor is 100, so 450 must be rejected.
	if _, err := workflow.RepostSavingVoucher(ctx, logger, withdrawal.ID, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeWithdrawal,
		DebitAccountId:  savingAccount.ID,
		CreditAccountId: cashAccount.ID,
		Amount:          decimal.NewFromInt(450),
	}); err == nil {
		t.Fatalf("repost below minimum balance was accepted")
	}
	balance, err = models.GetAccountBalance(ctx, branch.ID, savingAccount.ID)
	if err != nil {
		t.Fatalf("GetAccountBalance: %v", err)
	}
	if !balance.Equal(decimal.NewFromInt(365)) {
		t.Errorf("balance after rejected repost = %s, want 365", balance)
	}

	// Verify moves A -> V once.
	verified, err := models.VerifyVoucher(ctx, branch.ID, deposit.ID)
	if err != nil {
		t.Fatalf("VerifyVoucher: %v", err)
	}
	if verified.VoucherStatus != models.VoucherStatusVerified {
		t.Errorf("verified status = %q, want V", verified.VoucherStatus)
	}
	if _, err := models.VerifyVoucher(ctx, branch.ID, deposit.ID); err == nil {
		t.Fatalf("second verification of the same voucher was accepted")
	}

	// A failure after the credit and debit inserts must roll back the whole
	// posting: no header, no detail rows, no saving detail. The saving
	// detail table is renamed away so its insert fails mid-transaction.
	db := config.GetDB()
	var vouchersBefore, detailsBefore, savingBefore int64
	db.Model(&models.Voucher{}).Count(&vouchersBefore)
	db.Model(&models.VoucherCreditDebitDetail{}).Count(&detailsBefore)
	db.Model(&models.VoucherSavingDetail{}).Count(&savingBefore)

	if err := db.Exec("RENAME TABLE voucher_saving_details TO voucher_saving_details_hidden").Error; err != nil {
		t.Fatalf("rename saving details table: %v", err)
	}
	_, postErr := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  cashAccount.ID,
		CreditAccountId: savingAccount.ID,
		Amount:          decimal.NewFromInt(40),
	})
	if err := db.Exec("RENAME TABLE voucher_saving_details_hidden TO voucher_saving_details").Error; err != nil {
		t.Fatalf("restore saving details table: %v", err)
	}
	if postErr == nil {
		t.Fatalf("posting survived a failed saving detail insert")
	}

	var vouchersAfter, detailsAfter, savingAfter int64
	db.Model(&models.Voucher{}).Count(&vouchersAfter)
	db.Model(&models.VoucherCreditDebitDetail{}).Count(&detailsAfter)
	db.Model(&models.VoucherSavingDetail{}).Count(&savingAfter)
	if vouchersAfter != vouchersBefore {
		t.Errorf("voucher headers leaked from rolled-back posting: %d -> %d", vouchersBefore, vouchersAfter)
	}
	if detailsAfter != detailsBefore {
		t.Errorf("detail rows leaked from rolled-back posting: %d -> %d", detailsBefore, detailsAfter)
	}
	if savingAfter != savingBefore {
		t.Errorf("saving detail rows leaked from rolled-back posting: %d -> %d", savingBefore, savingAfter)
	}

	// Turning branch auto-verification on posts vouchers directly as V,
	// stamped with the posting user.
	auto := true
	if _, err := models.UpdateBranch(ctx, branch.ID, &models.NewBranch{
		VoucherNumberSeriesId: series.ID,
		Name:                  "Head Office",
		Code:                  "HO",
		AutoVerification:      &auto,
	}); err != nil {
		t.Fatalf("UpdateBranch: %v", err)
	}
	autoDeposit, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  cashAccount.ID,
		CreditAccountId: savingAccount.ID,
		Amount:          decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("PostSavingVoucher auto-verified: %v", err)
	}
	if autoDeposit.VoucherStatus != models.VoucherStatusVerified {
		t.Errorf("auto-verified status = %q, want V", autoDeposit.VoucherStatus)
	}
	if autoDeposit.VerifiedBy != 1 {
		t.Errorf("auto-verified by = %d, want 1", autoDeposit.VerifiedBy)
	}

	// Concurrent postings contend for the branch lock on separate pooled
	// connections. Each must acquire and release in turn: all succeed, no
	// lock timeouts, distinct voucher numbers.
	const posters = 4
	results := make(chan *models.Voucher, posters)
	errs := make(chan error, posters)
	for i := 0; i < posters; i++ {
		go func() {
			v, err := workflow.PostSavingVoucher(ctx, logger, workflow.SavingVoucherInput{
				VoucherSubType:  models.VoucherSubTypeDeposit,
				DebitAccountId:  cashAccount.ID,
				CreditAccountId: savingAccount.ID,
				Amount:          decimal.NewFromInt(10),
			})
			if err != nil {
				errs <- err
				return
			}
			results <- v
		}()
	}
	seen := make(map[int64]bool)
	for i := 0; i < posters; i++ {
		select {
		case err := <-errs:
			t.Fatalf("concurrent posting: %v", err)
		case v := <-results:
			if seen[v.VoucherNo] {
				t.Errorf("duplicate voucher no %d from concurrent postings", v.VoucherNo)
			}
			seen[v.VoucherNo] = true
		}
	}
}
