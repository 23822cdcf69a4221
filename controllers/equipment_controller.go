package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
)

type CreateEquipmentInput struct {
	Name         string  `json:"name" binding:"required" example:"Badminton racket"`
	Category     string  `json:"category" binding:"required" example:"RACKET"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"review_count"`
	Badge        string  `json:"badge"`
	TotalQty     int     `json:"total_qty" binding:"required"`
	AvailableQty int     `json:"available_qty"`
	RentalFee    int     `json:"rental_fee"`
	Description  string  `json:"description"`
	ImageURL     string  `json:"image_url"`
}

// GetEquipmentList godoc
// @Summary List equipment
// @Description Returns the equipment catalog, optionally filtered by category
// @Tags equipment
// @Produce json
// @Param category query string false "Category filter, ALL for no filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Equipment
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/equipment [get]
func GetEquipmentList(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	query := database.DB.Preload("Instructor")
	if category := c.Query("category"); category != "" && category != "ALL" {
		query = query.Where("category = ?", category)
	}

	var equipment []models.Equipment
	if err := query.Offset(skip).Limit(limit).Find(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch equipment"})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// GetEquipment godoc
// @Summary Get one equipment item
// @Tags equipment
// @Produce json
// @Param id path int true "Equipment ID"
// @Success 200 {object} models.Equipment
// @Failure 404 {object} map[string]string "Equipment not found"
// @Router /api/equipment/{id} [get]
func GetEquipment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid equipment ID"})
		return
	}

	var equipment models.Equipment
	if err := database.DB.Preload("Instructor").First(&equipment, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	c.JSON(http.StatusOK, equipment)
}

// CreateEquipment godoc
// @Summary Register equipment
// @Description Admin only; the creating admin becomes the equipment's instructor
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param equipment body CreateEquipmentInput true "Equipment"
// @Success 201 {object} models.Equipment
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/equipment [post]
func CreateEquipment(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can register equipment"})
		return
	}

	var input CreateEquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	equipment := models.Equipment{
		Name:         input.Name,
		Category:     input.Category,
		InstructorID: userID,
		Rating:       input.Rating,
		ReviewCount:  input.ReviewCount,
		Badge:        input.Badge,
		TotalQty:     input.TotalQty,
		AvailableQty: input.AvailableQty,
		RentalFee:    input.RentalFee,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
	}

	if err := database.DB.Create(&equipment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create equipment"})
		return
	}

	c.JSON(http.StatusCreated, equipment)
}
