package controllers

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/gin-gonic/gin"
)

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	token, user, err := models.Login(c.Request.Context(), input.Username, input.Password)
	if err != nil {
		fail(c, http.StatusUnauthorized, err)
		return
	}
	success(c, "login successful", gin.H{"token": token, "user": user})
}

func Logout(c *gin.Context) {
	if err := models.Logout(c.Request.Context()); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "logout successful", nil)
}

// LogoutAll revokes every session of the calling user.
func LogoutAll(c *gin.Context) {
	if err := models.LogoutAll(c.Request.Context()); err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "all sessions revoked", nil)
}

// ClearCache flushes redis. Admin only.
func ClearCache(c *gin.Context) {
	if err := models.ClearCache(c.Request.Context()); err != nil {
		fail(c, http.StatusForbidden, err)
		return
	}
	success(c, "cache cleared", nil)
}

func CreateUser(c *gin.Context) {
	var input models.NewUser
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	user, err := models.CreateUser(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "user created", user)
}

func GetUsers(c *gin.Context) {
	var branchId *int
	if v, err := intQuery(c, "branch_id"); err == nil && v > 0 {
		branchId = &v
	}
	users, err := models.GetUsers(c.Request.Context(), branchId)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "users fetched", users)
}

func GetUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	user, err := models.GetUser(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "user fetched", user)
}
