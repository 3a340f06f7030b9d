package reports

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

func TestWriteDayBookExcelTotalsRow(t *testing.T) {
	day := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	report := &DayBookReport{
		BranchId: 1,
		FromDate: day,
		ToDate:   day,
		Rows: []*DayBookRow{
			{VoucherNo: 1, VoucherDate: day, VoucherSubType: "D", VoucherStatus: "A", EntryType: "Cr", Amount: decimal.NewFromInt(500)},
			{VoucherNo: 1, VoucherDate: day, VoucherSubType: "D", VoucherStatus: "A", EntryType: "Dr", Amount: decimal.NewFromInt(500)},
			{VoucherNo: 2, VoucherDate: day, VoucherSubType: "SW", VoucherStatus: "A", EntryType: "Cr", Amount: decimal.NewFromInt(150)},
		},
		TotalCredit: decimal.NewFromInt(650),
		TotalDebit:  decimal.NewFromInt(500),
	}

	var buf bytes.Buffer
	if err := WriteDayBookExcel(&buf, report); err != nil {
		t.Fatalf("WriteDayBookExcel: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	totalRow := fmt.Sprint(len(report.Rows) + 3)
	label, err := f.GetCellValue("Sheet1", "H"+totalRow)
	if err != nil {
		t.Fatalf("read label cell: %v", err)
	}
	if label != "Totals" {
		t.Errorf("totals label = %q, want %q", label, "Totals")
	}
	cr, err := f.GetCellValue("Sheet1", "I"+totalRow)
	if err != nil {
		t.Fatalf("read credit total cell: %v", err)
	}
	if cr != "650" {
		t.Errorf("credit total = %q, want %q", cr, "650")
	}
	dr, err := f.GetCellValue("Sheet1", "J"+totalRow)
	if err != nil {
		t.Fatalf("read debit total cell: %v", err)
	}
	if dr != "500" {
		t.Errorf("debit total = %q, want %q", dr, "500")
	}
}
