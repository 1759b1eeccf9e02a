package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type User struct {
	UID       uuid.UUID
	NumericID int64

	FirstName     string
	LastName      string
	Email         string
	Age           int
	Gender        string
	State         string
	StreetAddress string
	PostalCode    string
	City          string
	Country       string
	Latitude      float64
	Longitude     float64
	TrafficSource string
	CreatedAt     time.Time
}

var ErrUserNotFound = errors.New("user not found")
