package models

import (
	"errors"
	"strconv"
)

// Voucher lifecycle. A voucher is created awaiting verification unless the
// branch has auto-verification enabled, in which case it is verified at
// creation. Verification never changes the posted rows.
type VoucherStatus string

const (
	VoucherStatusAwaiting VoucherStatus = "A"
	VoucherStatusVerified VoucherStatus = "V"
)

func (s VoucherStatus) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}

func (s *VoucherStatus) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("voucher status must be string")
	}
	switch str {
	case "A":
		*s = VoucherStatusAwaiting
	case "V":
		*s = VoucherStatusVerified
	default:
		return errors.New("invalid voucher status")
	}
	return nil
}

// Side of a double-entry detail row.
type VoucherEntryType string

const (
	VoucherEntryTypeCredit VoucherEntryType = "Cr"
	VoucherEntryTypeDebit  VoucherEntryType = "Dr"
)

func (t VoucherEntryType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *VoucherEntryType) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("voucher entry type must be string")
	}
	switch str {
	case "Cr":
		*t = VoucherEntryTypeCredit
	case "Dr":
		*t = VoucherEntryTypeDebit
	default:
		return errors.New("invalid voucher entry type")
	}
	return nil
}

type VoucherType string

const (
	VoucherTypeSaving VoucherType = "S"
)

type VoucherSubType string

const (
	VoucherSubTypeDeposit    VoucherSubType = "D"
	VoucherSubTypeWithdrawal VoucherSubType = "W"
	VoucherSubTypeInterest   VoucherSubType = "I"
)

func (t VoucherSubType) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(t))), nil
}

func (t *VoucherSubType) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("voucher sub type must be string")
	}
	switch str {
	case "D":
		*t = VoucherSubTypeDeposit
	case "W":
		*t = VoucherSubTypeWithdrawal
	case "I":
		*t = VoucherSubTypeInterest
	default:
		return errors.New("invalid voucher sub type")
	}
	return nil
}

// Saving-account effect of a voucher.
type SavingOperation string

const (
	SavingOperationDeposit    SavingOperation = "SD"
	SavingOperationWithdrawal SavingOperation = "SW"
	SavingOperationInterest   SavingOperation = "IP"
)

func (o SavingOperation) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(string(o))), nil
}

func (o *SavingOperation) UnmarshalJSON(data []byte) error {
	str, err := strconv.Unquote(string(data))
	if err != nil {
		return errors.New("saving operation must be string")
	}
	switch str {
	case "SD":
		*o = SavingOperationDeposit
	case "SW":
		*o = SavingOperationWithdrawal
	case "IP":
		*o = SavingOperationInterest
	default:
		return errors.New("invalid saving operation")
	}
	return nil
}

// OperationForSubType maps the voucher sub-type to the saving-account
// operation it records.
func OperationForSubType(subType VoucherSubType) SavingOperation {
	switch subType {
	case VoucherSubTypeDeposit:
		return SavingOperationDeposit
	case VoucherSubTypeInterest:
		return SavingOperationInterest
	default:
		return SavingOperationWithdrawal
	}
}

type AccountStatus string

const (
	AccountStatusOpen   AccountStatus = "O"
	AccountStatusClosed AccountStatus = "C"
)

type UserRole string

const (
	UserRoleAdmin    UserRole = "A"
	UserRoleOperator UserRole = "O"
	UserRoleCustom   UserRole = "C"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleOperator, UserRoleCustom:
		return true
	}
	return false
}
