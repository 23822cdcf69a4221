package websocket

import (
	"encoding/json"
	"log"
	"time"

	"github.com/sportsedu/rental_backend/database"
	"github.com/sportsedu/rental_backend/models"
)

// inboundMessage is the client→server envelope. Any other fields a client
// sends (including a receiver id) are ignored.
type inboundMessage struct {
	Message string `json:"message"`
}

// Message timestamps use a single fixed zone so ordering within a room is
// not affected by where the server runs.
var chatTimeZone = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Seoul")
	if err != nil {
		return time.FixedZone("KST", 9*60*60)
	}
	return loc
}()

// SaveChatMessage persists a chat message and returns it with sender,
// receiver and rental context expanded for broadcasting. The receiver is
// always the other participant of the rental: the instructor when the renter
// sends, the renter when the instructor sends.
func SaveChatMessage(senderID, rentalID, renterID, instructorID uint, body string) (models.ChatMessage, error) {
	receiverID := instructorID
	if senderID == instructorID {
		receiverID = renterID
	}

	message := models.ChatMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		RentalID:   rentalID,
		Message:    body,
		Timestamp:  time.Now().In(chatTimeZone),
	}

	if err := database.DB.Create(&message).Error; err != nil {
		return message, err
	}

	// Re-read with participants and rental context expanded
	if err := database.DB.
		Preload("Sender").
		Preload("Receiver").
		Preload("Rental.User").
		Preload("Rental.Equipment.Instructor").
		First(&message, message.ID).Error; err != nil {
		log.Printf("error loading chat message %d details: %v", message.ID, err)
	}

	return message, nil
}

// HandleIncomingMessage processes one inbound payload from a streaming
// client. Decode and persistence failures are logged and dropped; they never
// terminate the connection.
func HandleIncomingMessage(client *Client, raw []byte) {
	var in inboundMessage
	if err := json.Unmarshal(raw, &in); err != nil {
		log.Printf("error unmarshaling chat message: %v", err)
		return
	}

	// An empty or absent body is silently ignored
	if in.Message == "" {
		return
	}

	saved, err := SaveChatMessage(client.userID, client.rentalID, client.renterID, client.instructorID, in.Message)
	if err != nil {
		// Known gap: the sender is not told about the drop, the failure is
		// only visible in the server log.
		log.Printf("error saving chat message for rental %d: %v", client.rentalID, err)
		return
	}

	payload, err := json.Marshal(saved)
	if err != nil {
		log.Printf("error marshaling chat message: %v", err)
		return
	}

	// Every connection in the room gets the broadcast, the sender included:
	// clients rely on the round-trip for display and the server-assigned
	// id and timestamp.
	client.hub.BroadcastToRoom(client.rentalID, payload)
}
