package controllers

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/gin-gonic/gin"
)

func CreateBranch(c *gin.Context) {
	var input models.NewBranch
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	branch, err := models.CreateBranch(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "branch created", branch)
}

func UpdateBranch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewBranch
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	branch, err := models.UpdateBranch(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "branch updated", branch)
}

func DeleteBranch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branch, err := models.DeleteBranch(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "branch deleted", branch)
}

func GetBranch(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branch, err := models.GetBranch(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "branch fetched", branch)
}

func GetBranches(c *gin.Context) {
	branches, err := models.GetBranches(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "branches fetched", branches)
}

func CreateVoucherNumberSeries(c *gin.Context) {
	var input models.NewVoucherNumberSeries
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	series, err := models.CreateVoucherNumberSeries(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher number series created", series)
}

func UpdateVoucherNumberSeries(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewVoucherNumberSeries
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	series, err := models.UpdateVoucherNumberSeries(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher number series updated", series)
}

func DeleteVoucherNumberSeries(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	series, err := models.DeleteVoucherNumberSeries(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher number series deleted", series)
}

func GetVoucherNumberSeriesAll(c *gin.Context) {
	series, err := models.GetVoucherNumberSeriesAll(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher number series fetched", series)
}

func GetVoucherNumberSeries(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	series, err := models.GetVoucherNumberSeries(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "voucher number series fetched", series)
}
