package domain

import (
	"errors"
	"time"
)

var ErrProspectNotFound = errors.New("prospect not found")

// Prospect statuses and interest levels used by the recommendation query.
const (
	ProspectStatusNew       = "new"
	ProspectStatusContacted = "contacted"

	InterestHigh = "high"
)

// Prospect is a potential customer being worked by its owning user.
type Prospect struct {
	ID               int64      `json:"id"`
	UserID           int64      `json:"user_id"`
	Name             string     `json:"name"`
	CompanyName      string     `json:"company_name,omitempty"`
	BusinessCategory string     `json:"business_category"`
	ContactEmail     string     `json:"contact_email,omitempty"`
	ContactPhone     string     `json:"contact_phone,omitempty"`
	InterestLevel    string     `json:"interest_level,omitempty"`
	Status           string     `json:"status"`
	NextFollowUpDate *time.Time `json:"next_follow_up_date,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at,omitempty"`
}
