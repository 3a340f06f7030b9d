package reports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DayBookRow is one detail line of the branch day book: every credit and
// debit entry posted in the period, with the voucher and account it belongs
// to.
type DayBookRow struct {
	VoucherId      int             `json:"voucher_id"`
	VoucherNo      int64           `json:"voucher_no"`
	VoucherSubType string          `json:"voucher_sub_type"`
	VoucherDate    time.Time       `json:"voucher_date"`
	VoucherStatus  string          `json:"voucher_status"`
	Narration      string          `json:"narration"`
	AccHeadCode    int64           `json:"acc_head_code"`
	AccountNo      int64           `json:"account_no"`
	MemberName     string          `json:"member_name"`
	EntryType      string          `json:"entry_type"`
	Amount         decimal.Decimal `json:"amount"`
}

type DayBookReport struct {
	BranchId    int             `json:"branch_id"`
	FromDate    time.Time       `json:"from_date"`
	ToDate      time.Time       `json:"to_date"`
	Rows        []*DayBookRow   `json:"rows"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
}

func GetDayBookReport(ctx context.Context, branchId int, fromDate time.Time, toDate time.Time) (*DayBookReport, error) {
	if branchId <= 0 {
		return nil, errors.New("branch id is required")
	}
	if toDate.Before(fromDate) {
		return nil, errors.New("to date is before from date")
	}

	sql := `
SELECT
    vouchers.id AS voucher_id,
    vouchers.voucher_no,
    vouchers.voucher_sub_type,
    vouchers.voucher_date,
    vouchers.voucher_status,
    vouchers.voucher_narration AS narration,
    details.acc_head_code,
    details.entry_type,
    details.voucher_amount AS amount,
    saving_accounts.account_no,
    members.name AS member_name
FROM
    vouchers
    JOIN voucher_credit_debit_details AS details ON details.voucher_id = vouchers.id
    LEFT JOIN saving_accounts ON saving_accounts.id = details.account_id
    LEFT JOIN members ON members.id = saving_accounts.member_id
WHERE
    vouchers.branch_id = ?
    AND vouchers.voucher_date BETWEEN ? AND ?
ORDER BY
    vouchers.voucher_no, details.voucher_seq_no;
`

	var rows []*DayBookRow
	db := config.GetDB()
	if err := db.WithContext(ctx).Raw(sql, branchId, fromDate, toDate).Scan(&rows).Error; err != nil {
		return nil, err
	}

	report := DayBookReport{
		BranchId: branchId,
		FromDate: fromDate,
		ToDate:   toDate,
		Rows:     rows,
	}
	for _, row := range rows {
		if row.EntryType == "Cr" {
			report.TotalCredit = report.TotalCredit.Add(row.Amount)
		} else {
			report.TotalDebit = report.TotalDebit.Add(row.Amount)
		}
	}
	return &report, nil
}

// WriteDayBookExcel renders the report as an xlsx workbook.
func WriteDayBookExcel(w io.Writer, report *DayBookReport) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	_, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	// Add headers
	f.SetCellValue(sheetName, "A1", "VoucherNo")
	f.SetCellValue(sheetName, "B1", "Date")
	f.SetCellValue(sheetName, "C1", "SubType")
	f.SetCellValue(sheetName, "D1", "Status")
	f.SetCellValue(sheetName, "E1", "HeadCode")
	f.SetCellValue(sheetName, "F1", "AccountNo")
	f.SetCellValue(sheetName, "G1", "Member")
	f.SetCellValue(sheetName, "H1", "Type")
	f.SetCellValue(sheetName, "I1", "Amount")
	f.SetCellValue(sheetName, "J1", "Narration")

	// Add data
	for i, row := range report.Rows {
		r := fmt.Sprint(i + 2)
		f.SetCellValue(sheetName, "A"+r, row.VoucherNo)
		f.SetCellValue(sheetName, "B"+r, row.VoucherDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, "C"+r, row.VoucherSubType)
		f.SetCellValue(sheetName, "D"+r, row.VoucherStatus)
		f.SetCellValue(sheetName, "E"+r, row.AccHeadCode)
		f.SetCellValue(sheetName, "F"+r, row.AccountNo)
		f.SetCellValue(sheetName, "G"+r, row.MemberName)
		f.SetCellValue(sheetName, "H"+r, row.EntryType)
		f.SetCellValue(sheetName, "I"+r, row.Amount.InexactFloat64())
		f.SetCellValue(sheetName, "J"+r, row.Narration)
	}

	totalRow := fmt.Sprint(len(report.Rows) + 3)
	f.SetCellValue(sheetName, "H"+totalRow, "Totals")
	f.SetCellValue(sheetName, "I"+totalRow, report.TotalCredit.InexactFloat64())
	f.SetCellValue(sheetName, "J"+totalRow, report.TotalDebit.InexactFloat64())

	return f.Write(w)
}
