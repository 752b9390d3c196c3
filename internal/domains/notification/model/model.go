package model

import (
	gModel "drivio/shared/model"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID          = "id"
	FieldRecipientID = "recipient_id"
	FieldRentalID    = "rental_id"
	FieldKind        = "kind"
	FieldTitle       = "title"
	FieldBody        = "body"
	FieldRead        = "read"
)

type Kind string

const (
	KindRentalApproved  Kind = "rental_approved"
	KindRentalRejected  Kind = "rental_rejected"
	KindRentalActive    Kind = "rental_active"
	KindRentalCompleted Kind = "rental_completed"
	KindRentalCancelled Kind = "rental_cancelled"
	KindRentalModified  Kind = "rental_modified"
)

type Notification struct {
	ID          string `db:"id"`
	RecipientID string `db:"recipient_id"`
	RentalID    string `db:"rental_id"`
	Kind        Kind   `db:"kind"`
	Title       string `db:"title"`
	Body        string `db:"body"`
	Read        bool   `db:"read"`
	gModel.Metadata
}
