package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is the in-memory state shared by the three triggers. CV and job
// texts carry explicit presence flags so a missing CV and a missing job
// description stay distinguishable (an empty extraction is still "present").
type Session struct {
	ID        uuid.UUID `json:"id"`
	CVText    string    `json:"-"`
	HasCV     bool      `json:"has_cv"`
	JobText   string    `json:"-"`
	HasJob    bool      `json:"has_job"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
