package store

import "time"

// User is a registered API consumer.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:30" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string    `json:"-"`
	APIKey       string    `gorm:"uniqueIndex;size:64" json:"api_key"`
	CreatedAt    time.Time `json:"created_at"`
}

// IGNCheck is one recorded lookup performed by an authenticated user.
type IGNCheck struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	GameCode  string    `gorm:"index;size:64" json:"game_code"`
	IGN       string    `json:"ign"`
	UserInput string    `json:"user_input"`
	Available bool      `json:"is_available"`
	CheckedAt time.Time `gorm:"index" json:"checked_at"`
}

// RequestStat is one recorded API request, written asynchronously by the
// logging middleware.
type RequestStat struct {
	ID         uint   `gorm:"primaryKey"`
	Endpoint   string `gorm:"index;size:255"`
	Method     string `gorm:"size:8"`
	StatusCode int    `gorm:"index"`
	DurationMS int64
	ClientIP   string    `gorm:"size:64"`
	UserAgent  string    `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"index"`
}
