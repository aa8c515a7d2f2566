package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`        // Primary key
	Name     string `gorm:"unique;not null" json:"name"` // Unique display name
	Password string `gorm:"not null" json:"-"`           // Hashed password, never serialized
}
