package controllers

import (
	"net/http"

	"github.com/CoderDeepakJoura/BankingSolution-sub003/models"
	"github.com/gin-gonic/gin"
)

// Zones

func CreateZone(c *gin.Context) {
	var input models.NewZone
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	zone, err := models.CreateZone(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "zone created", zone)
}

func UpdateZone(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewZone
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	zone, err := models.UpdateZone(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "zone updated", zone)
}

func DeleteZone(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	zone, err := models.DeleteZone(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "zone deleted", zone)
}

func GetZones(c *gin.Context) {
	zones, err := models.GetZones(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "zones fetched", zones)
}

// Tehsils

func CreateTehsil(c *gin.Context) {
	var input models.NewTehsil
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	tehsil, err := models.CreateTehsil(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "tehsil created", tehsil)
}

func UpdateTehsil(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewTehsil
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	tehsil, err := models.UpdateTehsil(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "tehsil updated", tehsil)
}

func DeleteTehsil(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tehsil, err := models.DeleteTehsil(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "tehsil deleted", tehsil)
}

func GetTehsils(c *gin.Context) {
	tehsils, err := models.GetTehsils(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "tehsils fetched", tehsils)
}

// Villages

func CreateVillage(c *gin.Context) {
	var input models.NewVillage
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	village, err := models.CreateVillage(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "village created", village)
}

func UpdateVillage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewVillage
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	village, err := models.UpdateVillage(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "village updated", village)
}

func DeleteVillage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	village, err := models.DeleteVillage(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "village deleted", village)
}

func GetVillages(c *gin.Context) {
	villages, err := models.GetVillages(c.Request.Context(),
		strQueryPtr(c, "name"), intQueryPtr(c, "zone_id"), intQueryPtr(c, "tehsil_id"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "villages fetched", villages)
}

// Castes

func CreateCaste(c *gin.Context) {
	var input models.NewCaste
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	caste, err := models.CreateCaste(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "caste created", caste)
}

func UpdateCaste(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewCaste
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	caste, err := models.UpdateCaste(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "caste updated", caste)
}

func DeleteCaste(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	caste, err := models.DeleteCaste(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "caste deleted", caste)
}

func GetCastes(c *gin.Context) {
	castes, err := models.GetCastes(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "castes fetched", castes)
}

// Categories

func CreateCategory(c *gin.Context) {
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	category, err := models.CreateCategory(c.Request.Context(), &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "category created", category)
}

func UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var input models.NewCategory
	if err := c.ShouldBindJSON(&input); err != nil {
		bindFail(c, err)
		return
	}
	category, err := models.UpdateCategory(c.Request.Context(), id, &input)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "category updated", category)
}

func DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	category, err := models.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "category deleted", category)
}

func GetCategories(c *gin.Context) {
	categories, err := models.GetCategories(c.Request.Context(), strQueryPtr(c, "name"))
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "categories fetched", categories)
}

func GetZone(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetZone(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "zone fetched", result)
}

func GetTehsil(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetTehsil(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "tehsil fetched", result)
}

func GetVillage(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetVillage(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "village fetched", result)
}

func GetCaste(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetCaste(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "caste fetched", result)
}

func GetCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	result, err := models.GetCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	success(c, "category fetched", result)
}
