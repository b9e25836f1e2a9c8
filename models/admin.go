package models

import "time"

// Admin arka ofis kullanıcısı. Parola bcrypt ile (tuzlu) saklanır.
type Admin struct {
	BaseModel
	Username     string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string     `gorm:"type:varchar(255);not null" json:"-"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}
