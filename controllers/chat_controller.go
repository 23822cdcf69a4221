package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
)

// GetChatHistory godoc
// @Summary Get the chat history of a rental
// @Description Returns the rental's messages in ascending timestamp order. Only the renter and the instructor may read it.
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Param rental_id path int true "Rental ID"
// @Success 200 {array} models.ChatMessage
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not a participant"
// @Router /api/chat/history/{rental_id} [get]
func GetChatHistory(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	rentalID, err := strconv.ParseUint(c.Param("rental_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	var rental models.Rental
	if err := database.DB.Preload("Equipment").First(&rental, rentalID).Error; err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this chat history"})
		return
	}

	if !rental.IsParticipant(userID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this chat history"})
		return
	}

	var messages []models.ChatMessage
	if err := database.DB.Where("rental_id = ?", rentalID).
		Order("timestamp ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}

	c.JSON(http.StatusOK, messages)
}

// GetChatRooms godoc
// @Summary List chat rooms for the instructing admin
// @Description Returns every rental the admin instructs that has at least one chat message, renter and equipment expanded
// @Tags chat
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rental
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /api/chat/rooms [get]
func GetChatRooms(c *gin.Context) {
	userID := c.MustGet("userID").(uint)
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can list chat rooms"})
		return
	}

	var rentals []models.Rental
	if err := database.DB.Model(&models.Rental{}).
		Joins("JOIN equipment ON equipment.id = rentals.equip_id").
		Joins("JOIN chat_messages ON chat_messages.rental_id = rentals.id").
		Where("equipment.instructor_id = ?", userID).
		Distinct("rentals.*").
		Preload("User").
		Preload("Equipment").
		Find(&rentals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat rooms"})
		return
	}

	c.JSON(http.StatusOK, rentals)
}
