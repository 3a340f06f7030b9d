package workflow

import (
	"testing"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/shopspring/decimal"
)

// NOTE: These tests are intentionally DB-free. They validate the posting
// semantics: a voucher always carries exactly one credit row and one debit
// row of equal amount, the saving detail follows the correct leg, and
// malformed input is rejected instead of silently posting nothing.
//
// Full DB integration tests run in an environment with MySQL available
// (see savingVoucherIntegration_test.go).

func validInput() SavingVoucherInput {
	return SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  11,
		CreditAccountId: 22,
		Amount:          decimal.NewFromInt(500),
	}
}

func TestValidateSavingVoucherInput(t *testing.T) {
	if err := ValidateSavingVoucherInput(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*SavingVoucherInput)
	}{
		{"zero amount", func(in *SavingVoucherInput) { in.Amount = decimal.Zero }},
		{"negative amount", func(in *SavingVoucherInput) { in.Amount = decimal.NewFromInt(-10) }},
		{"missing debit account", func(in *SavingVoucherInput) { in.DebitAccountId = 0 }},
		{"missing credit account", func(in *SavingVoucherInput) { in.CreditAccountId = 0 }},
		{"negative debit account", func(in *SavingVoucherInput) { in.DebitAccountId = -1 }},
		{"same account both sides", func(in *SavingVoucherInput) { in.CreditAccountId = in.DebitAccountId }},
		{"unknown sub type", func(in *SavingVoucherInput) { in.VoucherSubType = "X" }},
		{"empty sub type", func(in *SavingVoucherInput) { in.VoucherSubType = "" }},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		if err := ValidateSavingVoucherInput(in); err == nil {
			t.Errorf("%s: expected rejection, got nil error", tc.name)
		}
	}
}

func TestBuildVoucherEntriesBalanced(t *testing.T) {
	in := validInput()
	valueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	credit, debit, _ := BuildVoucherEntries(3, in, 40001, 10001, valueDate)

	if credit.EntryType != models.VoucherEntryTypeCredit {
		t.Errorf("first row entry type = %q, want Cr", credit.EntryType)
	}
	if debit.EntryType != models.VoucherEntryTypeDebit {
		t.Errorf("second row entry type = %q, want Dr", debit.EntryType)
	}
	if !credit.VoucherAmount.Equal(debit.VoucherAmount) {
		t.Errorf("unbalanced voucher: Cr %s, Dr %s", credit.VoucherAmount, debit.VoucherAmount)
	}
	if credit.VoucherSeqNo != 1 || debit.VoucherSeqNo != 2 {
		t.Errorf("seq nos = %d, %d, want 1, 2", credit.VoucherSeqNo, debit.VoucherSeqNo)
	}
	if credit.AccountId != in.CreditAccountId || debit.AccountId != in.DebitAccountId {
		t.Errorf("account ids = %d, %d, want %d, %d", credit.AccountId, debit.AccountId, in.CreditAccountId, in.DebitAccountId)
	}
	if credit.AccHeadCode != 40001 || debit.AccHeadCode != 10001 {
		t.Errorf("head codes = %d, %d, want 40001, 10001", credit.AccHeadCode, debit.AccHeadCode)
	}
	if credit.BranchId != 3 || debit.BranchId != 3 {
		t.Errorf("branch ids = %d, %d, want 3", credit.BranchId, debit.BranchId)
	}
	if !credit.ValueDate.Equal(valueDate) || !debit.ValueDate.Equal(valueDate) {
		t.Errorf("value dates not carried through")
	}
}

func TestBuildVoucherEntriesSavingSide(t *testing.T) {
	valueDate := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		subType       models.VoucherSubType
		wantOperation models.SavingOperation
		wantAccountId int
	}{
		{models.VoucherSubTypeDeposit, models.SavingOperationDeposit, 22},
		{models.VoucherSubTypeWithdrawal, models.SavingOperationWithdrawal, 11},
		{models.VoucherSubTypeInterest, models.SavingOperationInterest, 22},
	}
	for _, tc := range cases {
		in := validInput()
		in.VoucherSubType = tc.subType
		_, _, saving := BuildVoucherEntries(3, in, 40001, 10001, valueDate)
		if saving.Operation != tc.wantOperation {
			t.Errorf("%s: operation = %q, want %q", tc.subType, saving.Operation, tc.wantOperation)
		}
		if saving.AccountId != tc.wantAccountId {
			t.Errorf("%s: saving account id = %d, want %d", tc.subType, saving.AccountId, tc.wantAccountId)
		}
		if !saving.Amount.Equal(in.Amount) {
			t.Errorf("%s: saving amount = %s, want %s", tc.subType, saving.Amount, in.Amount)
		}
	}
}

func TestOperationForSubType(t *testing.T) {
	if got := models.OperationForSubType(models.VoucherSubTypeDeposit); got != models.SavingOperationDeposit {
		t.Errorf("deposit maps to %q, want SD", got)
	}
	if got := models.OperationForSubType(models.VoucherSubTypeWithdrawal); got != models.SavingOperationWithdrawal {
		t.Errorf("withdrawal maps to %q, want SW", got)
	}
	if got := models.OperationForSubType(models.VoucherSubTypeInterest); got != models.SavingOperationInterest {
		t.Errorf("interest maps to %q, want IP", got)
	}
}
