package models

import "gorm.io/gorm"

// Request statuses. A donor moves a request out of Pending by accepting or
// rejecting it; no other transition exists.
const (
	RequestPending  = "Pending"
	RequestAccepted = "Accepted"
	RequestRejected = "Rejected"
)

type PickupRequest struct {
	gorm.Model
	DonorID       int      `json:"donorId" binding:"required"`
	UserID        int      `json:"userId"`
	RequesterName string   `json:"requesterName" binding:"required"`
	ContactNumber string   `json:"contactNumber" binding:"required"`
	Address       Address  `json:"address" binding:"required" gorm:"embedded;embeddedPrefix:address_"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Description   string   `json:"description"`
	Status        string   `json:"status" gorm:"default:Pending"`
}

type RequestStatusUpdate struct {
	Status string `json:"status" binding:"required,oneof=Accepted Rejected"`
}
