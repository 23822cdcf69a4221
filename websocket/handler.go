package websocket

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
	"github.com/sportsedu/rental_backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Initialize the hub
func init() {
	InitHub()
}

// HandleConnection handles websocket connections for a rental's chat room.
// The token travels as a query parameter because the browser WebSocket API
// cannot set custom headers during the handshake. The handshake is accepted
// first; an unauthenticated or unauthorized client is then closed with a
// policy-violation frame and is never admitted to the hub.
func HandleConnection(c *gin.Context) {
	rentalID, err := strconv.ParseUint(c.Param("rental_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rental ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("error upgrading connection: %v", err)
		return
	}

	userID, err := utils.ParseToken(c.Query("token"))
	if err != nil {
		closePolicyViolation(conn, "Invalid credentials.")
		return
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		closePolicyViolation(conn, "Invalid credentials.")
		return
	}

	var rental models.Rental
	if err := database.DB.Preload("Equipment").First(&rental, rentalID).Error; err != nil {
		closePolicyViolation(conn, "Invalid rental.")
		return
	}

	renterID, instructorID := rental.Participants()
	if user.ID != renterID && user.ID != instructorID {
		closePolicyViolation(conn, "Not authorized for this chat.")
		return
	}

	client := &Client{
		hub:          hub,
		conn:         conn,
		send:         make(chan []byte, 256),
		userID:       user.ID,
		rentalID:     uint(rentalID),
		renterID:     renterID,
		instructorID: instructorID,
	}

	hub.JoinRoom(client, client.rentalID)

	// Start goroutines for reading and writing
	go client.readPump()
	go client.writePump()
}

func closePolicyViolation(conn *websocket.Conn, reason string) {
	deadline := time.Now().Add(writeWait)
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason), deadline)
	conn.Close()
}
