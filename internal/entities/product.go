package entities

import "github.com/google/uuid"

type Product struct {
	UID       uuid.UUID
	NumericID int64

	Name                 string
	Brand                string
	Category             string
	Department           string
	SKU                  string
	Cost                 float64
	RetailPrice          float64
	DistributionCenterID int64
}
