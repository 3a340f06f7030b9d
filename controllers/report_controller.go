package controllers

import (
	"net/http"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models/reports"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/gin-gonic/gin"
)

// GetDayBook returns the branch day book for a period, as JSON or as an
// xlsx download when format=xlsx.
func GetDayBook(c *gin.Context) {
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	if v := intQueryPtr(c, "branch_id"); v != nil {
		if isAdmin, _ := utils.GetIsAdminFromContext(c.Request.Context()); isAdmin {
			branchId = *v
		}
	}

	now := utils.StartOfDay(time.Now().UTC())
	fromDate, toDate := now, now.Add(24*time.Hour-time.Nanosecond)
	if v, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		fromDate = v
	}
	if v, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		toDate = v.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := reports.GetDayBookReport(c.Request.Context(), branchId, fromDate, toDate)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if c.Query("format") == "xlsx" {
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Disposition", "attachment; filename=daybook.xlsx")
		if err := reports.WriteDayBookExcel(c.Writer, report); err != nil {
			fail(c, http.StatusInternalServerError, err)
		}
		return
	}
	success(c, "day book fetched", report)
}
