package models

import (
	"time"

	"gorm.io/gorm"
)

type NonFoodItem struct {
	gorm.Model
	NonFoodDonationID int      `json:"nonFoodDonationId"`
	Type              string   `json:"type" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	Condition         string   `json:"condition" binding:"required,oneof=New Used"`
	Quantity          int      `json:"quantity" binding:"required"`
	Price             *float64 `json:"price,omitempty"`
}

type NonFoodDonation struct {
	gorm.Model
	UserID         int           `json:"userId" binding:"required"`
	Name           string        `json:"name" binding:"required"`
	Email          string        `json:"email" binding:"required,email"`
	ContactNumber  string        `json:"contactNumber" binding:"required"`
	Latitude       float64       `json:"latitude" binding:"required"`
	Longitude      float64       `json:"longitude" binding:"required"`
	NonFoodItems   []NonFoodItem `json:"nonFoodItems" binding:"required,min=1,dive" gorm:"foreignKey:NonFoodDonationID;constraint:OnDelete:CASCADE"`
	AvailableUntil time.Time     `json:"availableUntil" binding:"required"`
	DonationType   string        `json:"donationType" binding:"required,oneof=free priced"`
}
