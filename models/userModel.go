package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string         `json:"username" gorm:"size:64"`
	Email          string         `json:"email" gorm:"uniqueIndex;size:128"`
	Password       string         `json:"-"`
	Location       datatypes.JSON `json:"location,omitempty"`
	ProfilePicture string         `json:"profilePicture,omitempty"`
}

// UserLocation is the shape stored in the Location JSON column. A user
// carries either a coordinate pair or a city/state pair, sometimes both.
type UserLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	City      string   `json:"city,omitempty"`
	State     string   `json:"state,omitempty"`
}

type SignupData struct {
	Username string        `json:"username" binding:"required"`
	Email    string        `json:"email" binding:"required,email"`
	Password string        `json:"password" binding:"required,min=6"`
	Location *UserLocation `json:"location"`
}

type LoginData struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
