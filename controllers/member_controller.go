package controllers

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/config"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/workflow"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Members

func CreateMember(c *gin.Context) {
	var input models.NewMember
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	member, err := models.CreateMember(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "member created", member)
}

func UpdateMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewMember
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	member, err := models.UpdateMember(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "member updated", member)
}

func DeleteMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	member, err := models.DeleteMember(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "member deleted", member)
}

func GetMember(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	member, err := models.GetMember(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "member fetched", member)
}

func GetMembers(c *gin.Context) {
	members, err := models.GetMembers(c.Request.Context(),
		strQueryPtr(c, "name"), intQueryPtr(c, "village_id"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "members fetched", members)
}

// Saving accounts

type openingDeposit struct {
	CashAccountId int             `json:"cash_account_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Narration     string          `json:"narration"`
}

type openSavingAccountInput struct {
	models.NewSavingAccount
	OpeningDeposit *openingDeposit `json:"opening_deposit"`
}

// OpenSavingAccount opens the account and, when an opening deposit is
// supplied, posts the deposit voucher in the same request. The account stays
// open if the deposit is rejected; the caller gets the posting error.
func OpenSavingAccount(c *gin.Context) {
	var input openSavingAccountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	account, err := models.OpenSavingAccount(c.Request.Context(), &input.NewSavingAccount)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}

	if input.OpeningDeposit == nil {
		success(c, "saving account opened", account)
		return
	}
	narration := input.OpeningDeposit.Narration
	if narration == "" {
		narration = "opening deposit"
	}
	voucher, err := workflow.PostSavingVoucher(c.Request.Context(), config.GetLogger(), workflow.SavingVoucherInput{
		VoucherSubType:  models.VoucherSubTypeDeposit,
		DebitAccountId:  input.OpeningDeposit.CashAccountId,
		CreditAccountId: account.ID,
		Amount:          input.OpeningDeposit.Amount,
		Narration:       narration,
	})
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving account opened", gin.H{"account": account, "voucher": voucher})
}

func CloseSavingAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := models.CloseSavingAccount(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving account closed", account)
}

func DeleteSavingAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := models.DeleteSavingAccount(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving account deleted", account)
}

func GetSavingAccount(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	account, err := models.GetSavingAccount(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving account fetched", account)
}

func GetSavingAccounts(c *gin.Context) {
	var status *models.AccountStatus
	if s := c.Query("status"); s == string(models.AccountStatusOpen) || s == string(models.AccountStatusClosed) {
		st := models.AccountStatus(s)
		status = &st
	}
	accounts, err := models.GetSavingAccounts(c.Request.Context(), intQueryPtr(c, "member_id"), status)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving accounts fetched", accounts)
}
