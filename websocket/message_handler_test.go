package websocket

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points database.DB at a fresh in-memory store named after the
// test, so parallel packages and repeated runs never share state.
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

// seedRental creates a renter, an instructor, their equipment and a rental
// with the given id, ready for chat.
func seedRental(t *testing.T, rentalID uint) (renter, instructor models.User, rental models.Rental) {
	t.Helper()

	renter = models.User{Username: fmt.Sprintf("renter-%d", rentalID), Password: "x", Affiliation: "Dorm A", Role: models.RoleUser}
	require.NoError(t, database.DB.Create(&renter).Error)

	instructor = models.User{Username: fmt.Sprintf("instructor-%d", rentalID), Password: "x", Affiliation: "Sports Dept", Role: models.RoleAdmin}
	require.NoError(t, database.DB.Create(&instructor).Error)

	equipment := models.Equipment{Name: "Badminton racket", Category: "RACKET", InstructorID: instructor.ID, TotalQty: 5, AvailableQty: 5}
	require.NoError(t, database.DB.Create(&equipment).Error)

	rental = models.Rental{
		ID:        rentalID,
		UserID:    renter.ID,
		EquipID:   equipment.ID,
		StartDate: time.Now(),
		EndDate:   time.Now().Add(72 * time.Hour),
		Status:    models.RentalApproved,
	}
	require.NoError(t, database.DB.Create(&rental).Error)
	return renter, instructor, rental
}

func TestSaveChatMessageDerivesReceiver(t *testing.T) {
	req := require.New(t)
	setupTestDB(t)
	renter, instructor, rental := seedRental(t, 1)

	// Renter sends: the instructor receives
	fromRenter, err := SaveChatMessage(renter.ID, rental.ID, renter.ID, instructor.ID, "from renter")
	req.NoError(err)
	req.Equal(renter.ID, fromRenter.SenderID)
	req.Equal(instructor.ID, fromRenter.ReceiverID)
	req.Equal(rental.ID, fromRenter.RentalID)

	// Instructor sends: the renter receives
	fromInstructor, err := SaveChatMessage(instructor.ID, rental.ID, renter.ID, instructor.ID, "from instructor")
	req.NoError(err)
	req.Equal(instructor.ID, fromInstructor.SenderID)
	req.Equal(renter.ID, fromInstructor.ReceiverID)

	// The timestamp is server-assigned
	req.WithinDuration(time.Now(), fromRenter.Timestamp, time.Minute)
}

func TestSaveChatMessageExpandsContext(t *testing.T) {
	req := require.New(t)
	setupTestDB(t)
	renter, instructor, rental := seedRental(t, 2)

	saved, err := SaveChatMessage(renter.ID, rental.ID, renter.ID, instructor.ID, "hello")
	req.NoError(err)

	req.NotNil(saved.Sender)
	req.Equal(renter.Username, saved.Sender.Username)
	req.NotNil(saved.Receiver)
	req.Equal(instructor.Username, saved.Receiver.Username)

	req.NotNil(saved.Rental)
	req.NotNil(saved.Rental.User)
	req.Equal(renter.ID, saved.Rental.User.ID)
	req.NotNil(saved.Rental.Equipment)
	req.NotNil(saved.Rental.Equipment.Instructor)
	req.Equal(instructor.ID, saved.Rental.Equipment.Instructor.ID)
}

func TestHandleIncomingMessageDropsInvalidPayloads(t *testing.T) {
	req := require.New(t)
	setupTestDB(t)
	renter, instructor, rental := seedRental(t, 3)

	client := &Client{
		hub:          NewHub(),
		send:         make(chan []byte, 4),
		userID:       renter.ID,
		rentalID:     rental.ID,
		renterID:     renter.ID,
		instructorID: instructor.ID,
	}
	client.hub.JoinRoom(client, rental.ID)

	HandleIncomingMessage(client, []byte(`{}`))
	HandleIncomingMessage(client, []byte(`{"message":""}`))
	HandleIncomingMessage(client, []byte(`not even json`))

	var count int64
	database.DB.Model(&models.ChatMessage{}).Count(&count)
	req.Zero(count)
	req.Empty(client.send)
}

func TestHandleIncomingMessageIgnoresClientSuppliedReceiver(t *testing.T) {
	req := require.New(t)
	setupTestDB(t)
	renter, instructor, rental := seedRental(t, 4)

	client := &Client{
		hub:          NewHub(),
		send:         make(chan []byte, 4),
		userID:       renter.ID,
		rentalID:     rental.ID,
		renterID:     renter.ID,
		instructorID: instructor.ID,
	}
	client.hub.JoinRoom(client, rental.ID)

	// A malicious receiver_id in the envelope must not redirect the message
	HandleIncomingMessage(client, []byte(`{"message":"hi","receiver_id":9999}`))

	var stored models.ChatMessage
	req.NoError(database.DB.First(&stored).Error)
	req.Equal(instructor.ID, stored.ReceiverID)

	// The sender's own connection got the broadcast back
	var echoed models.ChatMessage
	req.NoError(json.Unmarshal(<-client.send, &echoed))
	req.Equal("hi", echoed.Message)
	req.Equal(renter.ID, echoed.SenderID)
	req.Equal(instructor.ID, echoed.ReceiverID)
}
