package models

import (
	"encoding/json"
	"testing"
)

func TestVoucherStatusUnmarshalRejectsUnknown(t *testing.T) {
	var s VoucherStatus
	for _, raw := range []string{`"X"`, `""`, `"a"`, `1`} {
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			t.Errorf("voucher status %s accepted", raw)
		}
	}
	if err := json.Unmarshal([]byte(`"A"`), &s); err != nil || s != VoucherStatusAwaiting {
		t.Errorf("voucher status A: got %q, err %v", s, err)
	}
	if err := json.Unmarshal([]byte(`"V"`), &s); err != nil || s != VoucherStatusVerified {
		t.Errorf("voucher status V: got %q, err %v", s, err)
	}
}

func TestVoucherEntryTypeUnmarshalRejectsUnknown(t *testing.T) {
	var e VoucherEntryType
	for _, raw := range []string{`"CR"`, `"cr"`, `"Debit"`, `""`} {
		if err := json.Unmarshal([]byte(raw), &e); err == nil {
			t.Errorf("entry type %s accepted", raw)
		}
	}
	if err := json.Unmarshal([]byte(`"Cr"`), &e); err != nil || e != VoucherEntryTypeCredit {
		t.Errorf("entry type Cr: got %q, err %v", e, err)
	}
	if err := json.Unmarshal([]byte(`"Dr"`), &e); err != nil || e != VoucherEntryTypeDebit {
		t.Errorf("entry type Dr: got %q, err %v", e, err)
	}
}

func TestSavingOperationUnmarshalRejectsUnknown(t *testing.T) {
	var o SavingOperation
	for _, raw := range []string{`"sd"`, `"XX"`, `""`} {
		if err := json.Unmarshal([]byte(raw), &o); err == nil {
			t.Errorf("operation %s accepted", raw)
		}
	}
	for raw, want := range map[string]SavingOperation{
		`"SD"`: SavingOperationDeposit,
		`"SW"`: SavingOperationWithdrawal,
		`"IP"`: SavingOperationInterest,
	} {
		if err := json.Unmarshal([]byte(raw), &o); err != nil || o != want {
			t.Errorf("operation %s: got %q, err %v", raw, o, err)
		}
	}
}

func TestVoucherSubTypeUnmarshalRejectsUnknown(t *testing.T) {
	var s VoucherSubType
	for _, raw := range []string{`"d"`, `"Z"`, `""`} {
		if err := json.Unmarshal([]byte(raw), &s); err == nil {
			t.Errorf("sub type %s accepted", raw)
		}
	}
	for raw, want := range map[string]VoucherSubType{
		`"D"`: VoucherSubTypeDeposit,
		`"W"`: VoucherSubTypeWithdrawal,
		`"I"`: VoucherSubTypeInterest,
	} {
		if err := json.Unmarshal([]byte(raw), &s); err != nil || s != want {
			t.Errorf("sub type %s: got %q, err %v", raw, s, err)
		}
	}
}
