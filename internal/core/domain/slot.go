package domain

import (
	"time"

	"github.com/google/uuid"
)

type Slot struct {
	ID           uuid.UUID `json:"id"`
	ExperienceID uuid.UUID `json:"experienceId"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	IsAvailable  bool      `json:"isAvailable"`
	Version      int       `json:"-"`
}

// Reserve flips an available slot to booked. It reports false when the
// slot was already taken, leaving it untouched.
func (s *Slot) Reserve() bool {
	if !s.IsAvailable {
		return false
	}

	s.IsAvailable = false
	s.Version++

	return true
}
