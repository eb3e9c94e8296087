package entity

import (
	"strings"
	"time"
)

// Business is the owning organisation of every record. Its profile feeds the
// branding block of generated documents.
type Business struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address,omitempty"`
	City       string    `json:"city,omitempty"`
	Postcode   string    `json:"postcode,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	FooterText string    `json:"footerText,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FullAddress joins address, city and postcode with commas, skipping empty
// parts.
func (b Business) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{b.Address, b.City, b.Postcode} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	return strings.Join(parts, ", ")
}
