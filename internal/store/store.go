package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrDuplicateUser is returned when a username or email is already taken.
var ErrDuplicateUser = errors.New("username or email already taken")

// Store persists users, lookup history, and request stats in SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if needed) the SQLite database at path and runs
// migrations. An empty path defaults to data/ign.db; ":memory:" is honored
// for tests.
func Open(path string) (*Store, error) {
	if path == "" {
		if err := os.MkdirAll("data", 0o755); err != nil {
			return nil, err
		}
		path = filepath.ToSlash(filepath.Join("data", "ign.db"))
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&User{}, &IGNCheck{}, &RequestStat{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// CreateUser inserts a new user, rejecting duplicate usernames/emails.
func (s *Store) CreateUser(ctx context.Context, u *User) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&User{}).
		Where("username = ? OR email = ?", u.Username, u.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateUser
	}
	return s.db.WithContext(ctx).Create(u).Error
}

// UserByEmail fetches a user by email.
func (s *Store) UserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByID fetches a user by id.
func (s *Store) UserByID(ctx context.Context, id uint) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// UserByAPIKey fetches a user by API key.
func (s *Store) UserByAPIKey(ctx context.Context, key string) (*User, error) {
	var u User
	if err := s.db.WithContext(ctx).Where("api_key = ?", key).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// IsNotFound reports whether err is gorm's record-not-found.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// RecordCheck appends one lookup to the history.
func (s *Store) RecordCheck(ctx context.Context, check *IGNCheck) error {
	if check.CheckedAt.IsZero() {
		check.CheckedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(check).Error
}

// RecordRequest appends one request stat row.
func (s *Store) RecordRequest(ctx context.Context, stat *RequestStat) error {
	if stat.CreatedAt.IsZero() {
		stat.CreatedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(stat).Error
}

// UserHistory returns a page of a user's checks, newest first, plus the
// total count.
func (s *Store) UserHistory(ctx context.Context, userID uint, limit, offset int) ([]IGNCheck, int64, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&IGNCheck{}).
		Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var checks []IGNCheck
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("checked_at DESC").
		Limit(limit).Offset(offset).
		Find(&checks).Error
	return checks, total, err
}

// CheckSummary aggregates one user's lookup activity.
type CheckSummary struct {
	TotalChecks      int64      `json:"total_checks"`
	SuccessfulChecks int64      `json:"successful_checks"`
	GamesChecked     int64      `json:"games_checked"`
	FirstCheck       *time.Time `json:"first_check"`
	LastCheck        *time.Time `json:"last_check"`
}

// UserCheckSummary computes the aggregate stats shown on the profile.
func (s *Store) UserCheckSummary(ctx context.Context, userID uint) (CheckSummary, error) {
	var summary CheckSummary
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total_checks,
			COUNT(CASE WHEN available THEN 1 END) AS successful_checks,
			COUNT(DISTINCT game_code) AS games_checked,
			MIN(checked_at) AS first_check,
			MAX(checked_at) AS last_check
		FROM ign_checks
		WHERE user_id = ?`, userID).Scan(&summary).Error
	return summary, err
}
