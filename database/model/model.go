package model

import "time"

// User is a registered researcher account. Username and email are unique
// across all users. Accounts are never updated or deleted.
type User struct {
	Id           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	Role         string    `json:"role" gorm:"not null;default:'researcher'"`
	CreatedAt    time.Time `json:"created_at"`
}

// Sample is a biomass sample record. Every sample belongs to exactly one
// user; quantity and description are optional.
type Sample struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	UserId      int       `json:"user_id" gorm:"index;not null"`
	Code        string    `json:"code" gorm:"uniqueIndex;not null"`
	SampleName  string    `json:"sample_name" gorm:"not null"`
	SampleType  string    `json:"sample_type"`
	Quantity    *float64  `json:"quantity"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Setting is a key/value row for server-side configuration that has to
// survive restarts, such as the generated token signing secret.
type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Value string `json:"value"`
}
