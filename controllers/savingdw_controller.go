package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/workflow"
	"github.com/gin-gonic/gin"
)

// PostSavingDW posts a new saving deposit/withdrawal voucher.
func PostSavingDW(c *gin.Context) {
	var input workflow.SavingVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	voucher, err := workflow.PostSavingVoucher(c.Request.Context(), config.GetLogger(), input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, fmt.Sprintf("Voucher saved successfully with voucher No. %d", voucher.VoucherNo), gin.H{
		"voucher":    voucher,
		"display_no": models.DisplayVoucherNo(c.Request.Context(), voucher),
	})
}

// UpdateSavingDW reposts an existing voucher with corrected values.
func UpdateSavingDW(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input workflow.SavingVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	voucher, err := workflow.RepostSavingVoucher(c.Request.Context(), config.GetLogger(), id, input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, fmt.Sprintf("Voucher saved successfully with voucher No. %d", voucher.VoucherNo), gin.H{
		"voucher":    voucher,
		"display_no": models.DisplayVoucherNo(c.Request.Context(), voucher),
	})
}

// PostInterest posts an interest-credit voucher.
func PostInterest(c *gin.Context) {
	var input workflow.SavingVoucherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	voucher, err := workflow.PostInterestVoucher(c.Request.Context(), config.GetLogger(), input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, fmt.Sprintf("Voucher saved successfully with voucher No. %d", voucher.VoucherNo), gin.H{
		"voucher":    voucher,
		"display_no": models.DisplayVoucherNo(c.Request.Context(), voucher),
	})
}

func VerifySavingDW(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	voucher, err := models.VerifyVoucher(c.Request.Context(), branchId, id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher verified", voucher)
}

func GetVoucher(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	voucher, err := models.GetVoucher(c.Request.Context(), branchId, id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher fetched", gin.H{
		"voucher":    voucher,
		"display_no": models.DisplayVoucherNo(c.Request.Context(), voucher),
	})
}

func GetVouchers(c *gin.Context) {
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())

	var fromDate, toDate *time.Time
	if v, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		fromDate = &v
	}
	if v, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		v = v.Add(24*time.Hour - time.Nanosecond)
		toDate = &v
	}
	var status *models.VoucherStatus
	if s := c.Query("status"); s == string(models.VoucherStatusAwaiting) || s == string(models.VoucherStatusVerified) {
		st := models.VoucherStatus(s)
		status = &st
	}
	limit, _ := intQuery(c, "limit")

	vouchers, err := models.GetVouchers(c.Request.Context(), branchId, fromDate, toDate, status, limit)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "vouchers fetched", vouchers)
}
