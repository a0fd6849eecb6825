package models

import (
	"time"

	"gorm.io/gorm"
)

type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type FoodItem struct {
	gorm.Model
	FoodDonationID int       `json:"foodDonationId"`
	Type           string    `json:"type"`
	Name           string    `json:"name" binding:"required"`
	Quantity       string    `json:"quantity" binding:"required"`
	Unit           string    `json:"unit"`
	ExpiryDate     time.Time `json:"expiryDate" binding:"required"`
}

type FoodDonation struct {
	gorm.Model
	UserID         int        `json:"userId"`
	Name           string     `json:"name" binding:"required"`
	Email          string     `json:"email" binding:"required,email"`
	ContactNumber  string     `json:"contactNumber" binding:"required"`
	Address        Address    `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Latitude       *float64   `json:"latitude,omitempty"`
	Longitude      *float64   `json:"longitude,omitempty"`
	LocationCity   string     `json:"locationCity,omitempty"`
	LocationState  string     `json:"locationState,omitempty"`
	FoodItems      []FoodItem `json:"foodItems" binding:"required,min=1,dive" gorm:"foreignKey:FoodDonationID;constraint:OnDelete:CASCADE"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	DonationType   string     `json:"donationType" binding:"required,oneof=free priced"`
	Price          *float64   `json:"price,omitempty" binding:"required_if=DonationType priced"`
	IsAccepted     bool       `json:"isAccepted"`
}

// FoodDonationUpdate carries the fields a donor may change after creation.
// Pointer fields distinguish "absent" from zero values.
type FoodDonationUpdate struct {
	Name           *string    `json:"name"`
	ContactNumber  *string    `json:"contactNumber"`
	Address        *Address   `json:"address"`
	Latitude       *float64   `json:"latitude"`
	Longitude      *float64   `json:"longitude"`
	LocationCity   *string    `json:"locationCity"`
	LocationState  *string    `json:"locationState"`
	AvailableUntil *time.Time `json:"availableUntil"`
	DonationType   *string    `json:"donationType" binding:"omitempty,oneof=free priced"`
	Price          *float64   `json:"price"`
	IsAccepted     *bool      `json:"isAccepted"`
}
