package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"github.com/sportsedu/rental_backend/utils"
)

type SignupInput struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required,min=6"`
	Affiliation string `json:"affiliation" binding:"required"`
	Name        string `json:"name"`
	AdminCode   string `json:"admin_code"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserInput struct {
	Name        string `json:"name"`
	Affiliation string `json:"affiliation"`
}

type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func adminCode() string {
	code := os.Getenv("ADMIN_CODE")
	if code == "" {
		code = "team2002"
	}
	return code
}

// Signup godoc
// @Summary Register a new user
// @Description Creates a user account. Supplying the admin code grants the ADMIN role.
// @Tags users
// @Accept json
// @Produce json
// @Param user body SignupInput true "User registration"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string "Invalid input or duplicate username"
// @Failure 500 {object} map[string]string "Server error"
// @Router /api/users/signup [post]
func Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if result := database.DB.Where("username = ?", input.Username).First(&existing); result.RowsAffected > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	role := models.RoleUser
	if input.AdminCode != "" && input.AdminCode == adminCode() {
		role = models.RoleAdmin
	}

	user := models.User{
		Username:    input.Username,
		Affiliation: input.Affiliation,
		Name:        input.Name,
		Role:        role,
	}
	if err := user.SetPassword(input.Password); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Authenticate a user
// @Description Verifies credentials and issues a JWT access token
// @Tags users
// @Accept json
// @Produce json
// @Param credentials body LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{} "Access token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /api/users/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	if err := user.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"role":         user.Role,
	})
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/users/me [get]
func GetMe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body UpdateUserInput true "Profile fields"
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/users/me [put]
func UpdateMe(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Affiliation != "" {
		user.Affiliation = input.Affiliation
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdatePassword godoc
// @Summary Change the authenticated user's password
// @Tags users
// @Accept json
// @Security BearerAuth
// @Param passwords body UpdatePasswordInput true "Current and new password"
// @Success 204 "Password updated"
// @Failure 400 {object} map[string]string "Current password incorrect"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /api/users/me/password [put]
func UpdatePassword(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input UpdatePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	if err := user.ValidatePassword(input.CurrentPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	if err := user.SetPassword(input.NewPassword); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	if err := database.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.Status(http.StatusNoContent)
}
