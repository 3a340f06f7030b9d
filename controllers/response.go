package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/utils"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func fail(c *gin.Context, status int, err error) {
	c.JSON(status, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

// bindFail reports a request-binding failure, flattening validator errors
// into a field => tag map when present.
func bindFail(c *gin.Context, err error) {
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "validation failed",
			"errors":  utils.ProcessValidationErrors(err),
		})
		return
	}
	fail(c, http.StatusBadRequest, err)
}

func intQuery(c *gin.Context, key string) (int, error) {
	return strconv.Atoi(c.Query(key))
}

func intQueryPtr(c *gin.Context, key string) *int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil && v > 0 {
		return &v
	}
	return nil
}

func strQueryPtr(c *gin.Context, key string) *string {
	return utils.NilIfEmpty(c.Query(key))
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid id"})
		return 0, false
	}
	return id, true
}
