package engagement

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the target app, battle, or post does not exist.
	ErrNotFound = errors.New("not found")

	ErrAlreadyNominated  = errors.New("already nominated")
	ErrAlreadyVoted      = errors.New("already voted")
	ErrAlreadyInterested = errors.New("already interested")

	// ErrInvalidEntrant means the voted app is not one of the battle's
	// two sides.
	ErrInvalidEntrant = errors.New("app is not part of this battle")
)

// isDuplicate reports whether err is a store-level uniqueness violation.
// The message check covers SQLite drivers that predate gorm's error
// translation ("UNIQUE constraint failed: ...").
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
