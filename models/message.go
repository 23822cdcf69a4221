package models

import (
	"time"
)

// ChatMessage is immutable once created; there is no update path and no UpdatedAt.
// Timestamp is assigned server-side in a fixed zone so history ordering is stable.
type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	Sender     *User     `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint      `gorm:"not null" json:"receiver_id"`
	Receiver   *User     `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
	RentalID   uint      `gorm:"not null;index" json:"rental_id"`
	Rental     *Rental   `gorm:"foreignKey:RentalID" json:"rental,omitempty"`
	Message    string    `gorm:"type:text;not null" json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}
