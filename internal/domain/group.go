package domain

// Group Model
type Group struct {
	ID      uint   `gorm:"primaryKey" json:"id"`                // Primary key
	Name    string `gorm:"not null" json:"name"`                // Group name
	Members []User `gorm:"many2many:group_members;" json:"-"`   // Membership via group_members join table
}
