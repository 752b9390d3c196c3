package model

import (
	gModel "drivio/shared/model"
)

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldRentalID   = "rental_id"
	FieldCustomerID = "customer_id"
	FieldCarID      = "car_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
)

type Review struct {
	ID         string `db:"id"`
	RentalID   string `db:"rental_id"`
	CustomerID string `db:"customer_id"`
	CarID      string `db:"car_id"`
	Rating     int    `db:"rating"`
	Comment    string `db:"comment"`
	gModel.Metadata
}
