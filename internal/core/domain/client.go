package domain

import (
	"errors"
	"time"
)

var ErrClientNotFound = errors.New("client not found")

// Client is a signed customer account. UserID is the owning user, fixed at
// creation time and never reassigned through the API.
type Client struct {
	ID                      int64      `json:"id"`
	UserID                  int64      `json:"user_id"`
	Name                    string     `json:"name"`
	CompanyName             string     `json:"company_name,omitempty"`
	BusinessCategory        string     `json:"business_category"`
	ContactEmail            string     `json:"contact_email,omitempty"`
	ContactPhone            string     `json:"contact_phone,omitempty"`
	Status                  string     `json:"status,omitempty"`
	SignedDate              *time.Time `json:"signed_date,omitempty"`
	EstimatedMonthlyRevenue float64    `json:"estimated_monthly_revenue,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               *time.Time `json:"updated_at,omitempty"`
}
