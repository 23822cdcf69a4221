package models

type Equipment struct {
	ID           uint    `gorm:"primaryKey" json:"equip_id"`
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	Category     string  `gorm:"size:100" json:"category"`
	InstructorID uint    `json:"instructor_id"`
	Instructor   *User   `gorm:"foreignKey:InstructorID" json:"instructor,omitempty"`
	Rating       float64 `gorm:"default:0" json:"rating"`
	ReviewCount  int     `gorm:"default:0" json:"review_count"`
	Badge        string  `gorm:"size:50" json:"badge,omitempty"`
	TotalQty     int     `gorm:"default:0" json:"total_qty"`
	AvailableQty int     `gorm:"default:0" json:"available_qty"`
	RentalFee    int     `gorm:"default:0" json:"rental_fee"`
	Description  string  `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string  `gorm:"size:255" json:"image_url,omitempty"`

	Rentals []Rental `gorm:"foreignKey:EquipID" json:"-"`
}
