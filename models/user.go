package models

import (
	"golang.org/x/crypto/bcrypt"
)

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID          uint   `gorm:"primaryKey" json:"user_id"`
	Username    string `gorm:"size:255;not null;unique" json:"username"`
	Password    string `gorm:"size:255;not null" json:"-"`
	Affiliation string `gorm:"size:255" json:"affiliation"`
	Name        string `gorm:"size:255" json:"name,omitempty"`
	Role        string `gorm:"size:10;default:'USER'" json:"role"`

	Rentals             []Rental    `gorm:"foreignKey:UserID" json:"-"`
	InstructedEquipment []Equipment `gorm:"foreignKey:InstructorID" json:"-"`
}

// SetPassword hashes and stores the given plaintext password.
// bcrypt rejects input longer than 72 bytes, so longer passwords are truncated first.
func (u *User) SetPassword(password string) error {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	hashed, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// ValidatePassword checks if the provided password matches the stored hash
func (u *User) ValidatePassword(password string) error {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), raw)
}
