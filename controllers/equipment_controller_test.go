package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"github.com/stretchr/testify/require"
)

func TestEquipmentCatalog(t *testing.T) {
	req := require.New(t)
	setupTestDB(t)
	router := newTestRouter()

	admin := createUser(t, "catalog-admin", models.RoleAdmin)
	user := createUser(t, "catalog-user", models.RoleUser)

	rec := doRequest(t, router, http.MethodPost, "/api/equipment", tokenFor(t, admin), map[string]interface{}{
		"name":          "Basketball",
		"category":      "BALL",
		"total_qty":     10,
		"available_qty": 10,
		"rental_fee":    500,
	})
	req.Equal(http.StatusCreated, rec.Code)

	var created models.Equipment
	decodeBody(t, rec, &created)
	// The creating admin becomes the instructor, whatever the client sent
	req.Equal(admin.ID, created.InstructorID)

	racket := models.Equipment{Name: "Squash racket", Category: "RACKET", InstructorID: admin.ID, TotalQty: 4, AvailableQty: 4}
	req.NoError(database.DB.Create(&racket).Error)

	// Category filter
	rec = doRequest(t, router, http.MethodGet, "/api/equipment?category=BALL", "", nil)
	req.Equal(http.StatusOK, rec.Code)
	var listed []models.Equipment
	decodeBody(t, rec, &listed)
	req.Len(listed, 1)
	req.Equal("Basketball", listed[0].Name)

	// ALL disables the filter and the instructor comes expanded
	rec = doRequest(t, router, http.MethodGet, "/api/equipment?category=ALL", "", nil)
	req.Equal(http.StatusOK, rec.Code)
	decodeBody(t, rec, &listed)
	req.Len(listed, 2)
	req.NotNil(listed[0].Instructor)

	// Detail and 404
	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/equipment/%d", created.ID), "", nil)
	req.Equal(http.StatusOK, rec.Code)
	rec = doRequest(t, router, http.MethodGet, "/api/equipment/987654", "", nil)
	req.Equal(http.StatusNotFound, rec.Code)

	// Non-admins cannot register equipment
	rec = doRequest(t, router, http.MethodPost, "/api/equipment", tokenFor(t, user), map[string]interface{}{
		"name":      "Rogue item",
		"category":  "BALL",
		"total_qty": 1,
	})
	req.Equal(http.StatusForbidden, rec.Code)
}
