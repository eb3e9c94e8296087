package entity

import "time"

// Delivery challan lifecycle states.
const (
	ChallanStatusPending   = "pending"
	ChallanStatusDelivered = "delivered"
	ChallanStatusCancelled = "cancelled"
)

// DeliveryChallan records goods dispatched to a customer. It carries no
// monetary figures: items list name, quantity and unit only.
type DeliveryChallan struct {
	ID              string     `json:"id"`
	BusinessID      string     `json:"businessId"`
	Number          string     `json:"documentNumber"`
	CustomerName    string     `json:"customerName"`
	CustomerAddress string     `json:"customerAddress,omitempty"`
	DeliveryAddress string     `json:"deliveryAddress,omitempty"`
	Items           []LineItem `json:"items"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}
