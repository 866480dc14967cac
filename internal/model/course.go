package model

import "time"

// Course is a catalog entry. Rows are seeded once when the table is empty
// and treated as read-only afterward.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"size:1024;not null"`
	Price       int       `json:"price" gorm:"not null"` // integer currency unit
	Duration    string    `json:"duration" gorm:"size:50;not null"`
	Level       string    `json:"level" gorm:"size:50;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
