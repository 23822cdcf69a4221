package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/middleware"
	"github.com/sportsedu/rental_backend/models"
	"github.com/sportsedu/rental_backend/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Equipment{},
		&models.Rental{},
		&models.Course{},
		&models.EquipmentCourse{},
		&models.ChatMessage{},
	))
	database.DB = db
}

// newTestRouter mirrors the route layout of main.go for the handlers under test.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	public := router.Group("/api")
	{
		public.POST("/users/signup", Signup)
		public.POST("/users/login", Login)
		public.GET("/equipment", GetEquipmentList)
		public.GET("/equipment/:id", GetEquipment)
		public.GET("/courses", GetCourses)
		public.GET("/courses/:id", GetCourse)
	}

	api := router.Group("/api")
	api.Use(middleware.JWTAuth())
	{
		api.GET("/users/me", GetMe)
		api.PUT("/users/me", UpdateMe)
		api.PUT("/users/me/password", UpdatePassword)
		api.GET("/users/me/courses", GetMyCourses)
		api.POST("/equipment", CreateEquipment)
		api.POST("/rentals", CreateRental)
		api.GET("/rentals/my", GetMyRentals)
		api.GET("/rentals/all", GetAllRentals)
		api.PUT("/rentals/:id/approve", ApproveRental)
		api.PUT("/rentals/:id/return", ReturnRental)
		api.POST("/courses", CreateCourse)
		api.GET("/chat/history/:rental_id", GetChatHistory)
		api.GET("/chat/rooms", GetChatRooms)
	}

	return router
}

func createUser(t *testing.T, username, role string) models.User {
	t.Helper()
	user := models.User{Username: username, Affiliation: "Test Dept", Role: role}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(user.ID, user.Role)
	require.NoError(t, err)
	return token
}

// doRequest performs a JSON request against the router; token may be empty.
func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
