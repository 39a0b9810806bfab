package models

// User represents a registered coach account
type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	Name         string `json:"name" gorm:"size:100" validate:"max=100"`
	PasswordHash string `json:"-" gorm:"not null;size:100"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
