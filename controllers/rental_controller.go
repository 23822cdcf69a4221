package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"gorm.io/gorm"
)

type CreateRentalInput struct {
	EquipID   uint      `json:"equip_id" binding:"required" example:"1"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Reason    string    `json:"reason" binding:"required"`
}

// CreateRental godoc
// @Summary Request a rental
// @Description Creates a PENDING rental request and reserves one unit of the equipment
// @Tags rentals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param rental body CreateRentalInput true "Rental request"
// @Success 201 {object} models.Rental
// @Failure 400 {object} map[string]string "Out of stock"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/rentals [post]
func CreateRental(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input CreateRentalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rental := models.Rental{
		UserID:    userID,
		EquipID:   input.EquipID,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Reason:    input.Reason,
		Status:    models.RentalPending,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var equipment models.Equipment
		if err := tx.First(&equipment, input.EquipID).Error; err != nil {
			return err
		}
		if equipment.AvailableQty < 1 {
			return gorm.ErrInvalidData
		}

		equipment.AvailableQty--
		if err := tx.Save(&equipment).Error; err != nil {
			return err
		}
		return tx.Create(&rental).Error
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Equipment out of stock"})
		return
	}

	c.JSON(http.StatusCreated, rental)
}

// GetMyRentals godoc
// @Summary List the authenticated user's rentals
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rental
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/rentals/my [get]
func GetMyRentals(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var rentals []models.Rental
	if err := database.DB.Where("user_id = ?", userID).
		Preload("Equipment.Instructor").
		Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rentals"})
		return
	}

	c.JSON(http.StatusOK, rentals)
}

// GetAllRentals godoc
// @Summary List all rental requests
// @Description Admin only; newest first with renter and equipment expanded
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rental
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/rentals/all [get]
func GetAllRentals(c *gin.Context) {
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		return
	}

	var rentals []models.Rental
	if err := database.DB.
		Preload("User").
		Preload("Equipment.Instructor").
		Order("created_at DESC").
		Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rentals"})
		return
	}

	c.JSON(http.StatusOK, rentals)
}

// ApproveRental godoc
// @Summary Approve a rental request
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} map[string]string "Approved"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Rental not found"
// @Router /api/rentals/{id}/approve [put]
func ApproveRental(c *gin.Context) {
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	var rental models.Rental
	if err := database.DB.First(&rental, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	rental.Status = models.RentalApproved
	if err := database.DB.Save(&rental).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to approve rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rental approved"})
}

// ReturnRental godoc
// @Summary Mark a rental as returned
// @Description Admin only; restores the reserved unit to the equipment stock
// @Tags rentals
// @Produce json
// @Security BearerAuth
// @Param id path int true "Rental ID"
// @Success 200 {object} map[string]string "Returned"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Rental not found"
// @Router /api/rentals/{id}/return [put]
func ReturnRental(c *gin.Context) {
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	var rental models.Rental
	if err := database.DB.First(&rental, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rental not found"})
		return
	}

	if rental.Status == models.RentalReturned {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rental already returned"})
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		rental.Status = models.RentalReturned
		if err := tx.Save(&rental).Error; err != nil {
			return err
		}

		var equipment models.Equipment
		if err := tx.First(&equipment, rental.EquipID).Error; err != nil {
			return err
		}
		equipment.AvailableQty++
		return tx.Save(&equipment).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to return rental"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rental returned"})
}
