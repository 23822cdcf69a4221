package models

type Course struct {
	ID          uint   `gorm:"primaryKey" json:"course_id"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	ContentType string `gorm:"size:50" json:"content_type"`
	Duration    string `gorm:"size:50" json:"duration,omitempty"`
	ContentURL  string `gorm:"size:255" json:"content_url"`
}

// EquipmentCourse links a course to the equipment it teaches.
type EquipmentCourse struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	EquipID  uint `gorm:"not null;index" json:"equip_id"`
	CourseID uint `gorm:"not null;index" json:"course_id"`
}
