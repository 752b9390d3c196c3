package model

import (
	"drivio/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID                  = "id"
	FieldCarID               = "car_id"
	FieldCustomerID          = "customer_id"
	FieldStartDate           = "start_date"
	FieldEndDate             = "end_date"
	FieldPickupLocation      = "pickup_location"
	FieldDropoffLocation     = "dropoff_location"
	FieldSpecialRequests     = "special_requests"
	FieldHasInsurance        = "has_insurance"
	FieldHasGPS              = "has_gps"
	FieldHasChildSeat        = "has_child_seat"
	FieldHasAdditionalDriver = "has_additional_driver"
	FieldTotalDays           = "total_days"
	FieldTotalAmount         = "total_amount"
	FieldStatus              = "status"
	FieldPaymentStatus       = "payment_status"
	FieldRejectionReason     = "rejection_reason"
)

// Rental is a reservation of a car for an inclusive calendar date range.
// Status and PaymentStatus are independent dimensions: a rental may be
// approved while its payment is still pending.
type Rental struct {
	ID                  string          `db:"id"`
	CarID               string          `db:"car_id"`
	CustomerID          string          `db:"customer_id"`
	StartDate           time.Time       `db:"start_date"`
	EndDate             time.Time       `db:"end_date"`
	PickupLocation      string          `db:"pickup_location"`
	DropoffLocation     string          `db:"dropoff_location"`
	SpecialRequests     string          `db:"special_requests"`
	HasInsurance        bool            `db:"has_insurance"`
	HasGPS              bool            `db:"has_gps"`
	HasChildSeat        bool            `db:"has_child_seat"`
	HasAdditionalDriver bool            `db:"has_additional_driver"`
	TotalDays           int             `db:"total_days"`
	TotalAmount         decimal.Decimal `db:"total_amount"`
	Status              Status          `db:"status"`
	PaymentStatus       PaymentStatus   `db:"payment_status"`
	RejectionReason     *string         `db:"rejection_reason"`
	model.Metadata
}

// Addons reports which optional extras are selected on the rental.
func (r *Rental) Addons() Addons {
	return Addons{
		Insurance:        r.HasInsurance,
		GPS:              r.HasGPS,
		ChildSeat:        r.HasChildSeat,
		AdditionalDriver: r.HasAdditionalDriver,
	}
}

// StatusEvent is published to Kafka whenever a rental changes lifecycle
// state. The notification consumer materializes these into the customer's
// notification feed.
type StatusEvent struct {
	RentalID       string    `json:"rental_id"`
	CustomerID     string    `json:"customer_id"`
	CarID          string    `json:"car_id"`
	Status         Status    `json:"status"`
	PreviousStatus Status    `json:"previous_status"`
	Reason         string    `json:"reason,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
