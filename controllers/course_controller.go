package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"gorm.io/gorm"
)

type CreateCourseInput struct {
	Title       string `json:"title" binding:"required" example:"Badminton basics"`
	Description string `json:"description"`
	ContentType string `json:"content_type" binding:"required" example:"VIDEO"`
	Duration    string `json:"duration"`
	ContentURL  string `json:"content_url" binding:"required"`
	EquipID     uint   `json:"equip_id" binding:"required"`
}

// GetCourses godoc
// @Summary List courses
// @Description Returns the course catalog, optionally filtered by linked equipment
// @Tags courses
// @Produce json
// @Param equip_id query int false "Equipment filter"
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} models.Course
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/courses [get]
func GetCourses(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	query := database.DB.Model(&models.Course{})
	if equipID := c.Query("equip_id"); equipID != "" {
		query = query.
			Joins("JOIN equipment_courses ON equipment_courses.course_id = courses.id").
			Where("equipment_courses.equip_id = ?", equipID)
	}

	var courses []models.Course
	if err := query.Offset(skip).Limit(limit).Find(&courses).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}

	c.JSON(http.StatusOK, courses)
}

// GetMyCourses godoc
// @Summary List courses unlocked by the user's approved rentals
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Course
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/users/me/courses [get]
func GetMyCourses(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var approved []models.Rental
	if err := database.DB.
		Where("user_id = ? AND status = ?", userID, models.RentalApproved).
		Find(&approved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rentals"})
		return
	}

	equipIDs := make([]uint, 0, len(approved))
	for _, rental := range approved {
		equipIDs = append(equipIDs, rental.EquipID)
	}

	courses := []models.Course{}
	if len(equipIDs) > 0 {
		if err := database.DB.Model(&models.Course{}).
			Joins("JOIN equipment_courses ON equipment_courses.course_id = courses.id").
			Where("equipment_courses.equip_id IN ?", equipIDs).
			Distinct("courses.*").
			Find(&courses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
			return
		}
	}

	c.JSON(http.StatusOK, courses)
}

// GetCourse godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} models.Course
// @Failure 404 {object} map[string]string "Course not found"
// @Router /api/courses/{id} [get]
func GetCourse(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	var course models.Course
	if err := database.DB.First(&course, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}

	c.JSON(http.StatusOK, course)
}

// CreateCourse godoc
// @Summary Create a course linked to an equipment item
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param course body CreateCourseInput true "Course"
// @Success 201 {object} models.Course
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Equipment not found"
// @Router /api/courses [post]
func CreateCourse(c *gin.Context) {
	if c.MustGet("userRole").(string) != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create courses"})
		return
	}

	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var equipment models.Equipment
	if err := database.DB.First(&equipment, input.EquipID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Equipment not found"})
		return
	}

	course := models.Course{
		Title:       input.Title,
		Description: input.Description,
		ContentType: input.ContentType,
		Duration:    input.Duration,
		ContentURL:  input.ContentURL,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		link := models.EquipmentCourse{EquipID: equipment.ID, CourseID: course.ID}
		return tx.Create(&link).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, course)
}
