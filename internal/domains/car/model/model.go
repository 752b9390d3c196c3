package model

import (
	"drivio/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "cars"
	EntityName = "car"

	FieldID        = "id"
	FieldOwnerID   = "owner_id"
	FieldName      = "name"
	FieldBrand     = "brand"
	FieldCarModel  = "car_model"
	FieldYear      = "year"
	FieldDailyRate = "daily_rate"
	FieldImageURL  = "image_url"
	FieldAvailable = "available"
)

// Car is a listing in the rental catalog. Rentals embed a read-only snapshot
// of it; pricing always uses the car's current daily rate at mutation time.
type Car struct {
	ID        string          `db:"id"`
	OwnerID   string          `db:"owner_id"`
	Name      string          `db:"name"`
	Brand     string          `db:"brand"`
	CarModel  string          `db:"car_model"`
	Year      int             `db:"year"`
	DailyRate decimal.Decimal `db:"daily_rate"`
	ImageURL  string          `db:"image_url"`
	Available bool            `db:"available"`
	model.Metadata
}
