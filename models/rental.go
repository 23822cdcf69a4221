package models

import (
	"time"
)

// Rental statuses
const (
	RentalPending   = "PENDING"
	RentalApproved  = "APPROVED"
	RentalReturned  = "RETURNED"
	RentalCancelled = "CANCELLED"
)

type Rental struct {
	ID        uint       `gorm:"primaryKey" json:"rental_id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	User      *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	EquipID   uint       `gorm:"not null;index" json:"equip_id"`
	Equipment *Equipment `gorm:"foreignKey:EquipID" json:"equipment,omitempty"`
	StartDate time.Time  `json:"start_date"`
	EndDate   time.Time  `json:"end_date"`
	Status    string     `gorm:"size:20;default:'PENDING'" json:"status"`
	Reason    string     `gorm:"type:text" json:"reason,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// Participants returns the two identities allowed into the rental's chat:
// the renter and the instructor of the rented equipment. Authorization and
// receiver derivation both go through here so they cannot diverge.
// The Equipment association must be loaded.
func (r *Rental) Participants() (renterID, instructorID uint) {
	renterID = r.UserID
	if r.Equipment != nil {
		instructorID = r.Equipment.InstructorID
	}
	return renterID, instructorID
}

// IsParticipant reports whether userID is one of the rental's two chat participants.
func (r *Rental) IsParticipant(userID uint) bool {
	renterID, instructorID := r.Participants()
	return userID == renterID || userID == instructorID
}
