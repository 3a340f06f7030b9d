package controllers

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/gin-gonic/gin"
)

// Account heads

func CreateAccountHead(c *gin.Context) {
	var input models.NewAccountHead
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	head, err := models.CreateAccountHead(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "account head created", head)
}

func UpdateAccountHead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewAccountHead
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	head, err := models.UpdateAccountHead(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "account head updated", head)
}

func DeleteAccountHead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	head, err := models.DeleteAccountHead(c.Request.Context(), branchId, id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "account head deleted", head)
}

func GetAccountHeads(c *gin.Context) {
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	heads, err := models.GetAccountHeads(c.Request.Context(), branchId, strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "account heads fetched", heads)
}

// Saving products

func CreateSavingProduct(c *gin.Context) {
	var input models.NewSavingProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	product, err := models.CreateSavingProduct(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving product created", product)
}

func UpdateSavingProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewSavingProduct
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	product, err := models.UpdateSavingProduct(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving product updated", product)
}

func DeleteSavingProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := models.DeleteSavingProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving product deleted", product)
}

func ToggleSavingProductActive(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := models.ToggleSavingProductActive(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving product toggled", product)
}

func GetSavingProducts(c *gin.Context) {
	activeOnly := c.Query("active") == "1" || c.Query("active") == "true"
	products, err := models.GetSavingProducts(c.Request.Context(), strQueryPtr(c, "name"), activeOnly)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving products fetched", products)
}

func GetAccountHead(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	branchId, _ := utils.GetBranchIdFromContext(c.Request.Context())
	head, err := models.GetAccountHead(c.Request.Context(), branchId, id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "account head fetched", head)
}

func GetSavingProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	product, err := models.GetSavingProduct(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "saving product fetched", product)
}
