package models

import "time"

type UserModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Email           string `gorm:"index"`
	FirstName       string
	LastName        string
	CredentialToken string
	Registered      bool `gorm:"default:false"`
	CreatedAt       time.Time
}
