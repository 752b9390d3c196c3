package model

import (
	"drivio/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "maintenance_records"
	EntityName = "maintenance"

	FieldID            = "id"
	FieldCarID         = "car_id"
	FieldDescription   = "description"
	FieldType          = "maintenance_type"
	FieldPriority      = "priority"
	FieldStatus        = "status"
	FieldCost          = "cost"
	FieldScheduledDate = "scheduled_date"
	FieldCompletedDate = "completed_date"
)

// Record is a maintenance job for a car. Its lifecycle mirrors the rental
// one at lower stakes: a separate, structurally identical closed state set.
type Record struct {
	ID            string          `db:"id"`
	CarID         string          `db:"car_id"`
	Description   string          `db:"description"`
	Type          Type            `db:"maintenance_type"`
	Priority      Priority        `db:"priority"`
	Status        Status          `db:"status"`
	Cost          decimal.Decimal `db:"cost"`
	ScheduledDate time.Time       `db:"scheduled_date"`
	CompletedDate *time.Time      `db:"completed_date"`
	model.Metadata
}

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

var Statuses = []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether the record can no longer change state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransition reports whether moving to next is legal: scheduled may start
// or cancel, in_progress may complete or cancel, terminal states are frozen.
// Unknown values on either side fail closed.
func (s Status) CanTransition(next Status) bool {
	if !s.Valid() || !next.Valid() || s == next {
		return false
	}

	switch s {
	case StatusScheduled:
		return next == StatusInProgress || next == StatusCancelled
	case StatusInProgress:
		return next == StatusCompleted || next == StatusCancelled
	}

	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}

	return false
}

type Type string

const (
	TypeRoutine    Type = "routine"
	TypeRepair     Type = "repair"
	TypeInspection Type = "inspection"
	TypeEmergency  Type = "emergency"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRoutine, TypeRepair, TypeInspection, TypeEmergency:
		return true
	}

	return false
}
