package model

// Status is the lifecycle state of a rental, independent of payment.
//
// The set is closed. Values arrive from the HTTP API and the database as
// plain strings, so every consumer of a Status must go through Valid or one
// of the predicates rather than trusting the raw value; unrecognized values
// fail closed (no action is permitted, display falls back to Unknown).
type Status string

const (
	StatusPendingApproval Status = "pending_approval"
	StatusApproved        Status = "approved"
	StatusRejected        Status = "rejected"
	StatusActive          Status = "active"
	StatusCompleted       Status = "completed"
	StatusCancelled       Status = "cancelled"
)

// Statuses lists every legal rental status.
var Statuses = []Status{
	StatusPendingApproval,
	StatusApproved,
	StatusRejected,
	StatusActive,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPendingApproval, StatusApproved, StatusRejected,
		StatusActive, StatusCompleted, StatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether the rental is immutable: no user-initiated
// transition is permitted out of a terminal status.
func (s Status) Terminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}

	return false
}

// CanModify reports whether the customer may propose changes to the rental.
func (s Status) CanModify() bool {
	switch s {
	case StatusPendingApproval, StatusApproved:
		return true
	}

	return false
}

// CanCancel reports whether the customer may request cancellation. Completed
// and cancelled rentals cannot be cancelled; neither can anything outside the
// closed status set.
func (s Status) CanCancel() bool {
	if !s.Valid() {
		return false
	}

	switch s {
	case StatusCompleted, StatusCancelled:
		return false
	}

	return true
}

// CanReview reports whether the customer may leave a review: only once the
// rental has completed, and only once.
func (s Status) CanReview(alreadyReviewed bool) bool {
	return s == StatusCompleted && !alreadyReviewed
}

// PaymentStatus is the lifecycle state of the payment attached to a rental.
// It varies independently of the rental status.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
	PaymentFailed   PaymentStatus = "failed"
)

var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentRefunded,
	PaymentFailed,
}

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentRefunded, PaymentFailed:
		return true
	}

	return false
}

// Descriptor is the fixed display metadata for a status badge.
type Descriptor struct {
	Label      string `json:"label"`
	IconKind   string `json:"icon_kind"`
	ColorClass string `json:"color_class"`
}

// UnknownDescriptor is returned for any value outside the closed enums, so
// malformed data from the wire renders as an explicit unknown badge instead
// of panicking a view.
var UnknownDescriptor = Descriptor{Label: "Unknown", IconKind: "help-circle", ColorClass: "gray"}

var statusDescriptors = map[Status]Descriptor{
	StatusPendingApproval: {Label: "Pending Approval", IconKind: "clock", ColorClass: "amber"},
	StatusApproved:        {Label: "Approved", IconKind: "check-circle", ColorClass: "blue"},
	StatusRejected:        {Label: "Rejected", IconKind: "x-circle", ColorClass: "red"},
	StatusActive:          {Label: "Active", IconKind: "car", ColorClass: "green"},
	StatusCompleted:       {Label: "Completed", IconKind: "flag", ColorClass: "gray"},
	StatusCancelled:       {Label: "Cancelled", IconKind: "ban", ColorClass: "red"},
}

// Descriptor returns the display metadata for the status, or
// UnknownDescriptor for values outside the enum.
func (s Status) Descriptor() Descriptor {
	if desc, ok := statusDescriptors[s]; ok {
		return desc
	}

	return UnknownDescriptor
}

var paymentDescriptors = map[PaymentStatus]Descriptor{
	PaymentPending:  {Label: "Payment Pending", IconKind: "clock", ColorClass: "amber"},
	PaymentPaid:     {Label: "Paid", IconKind: "check-circle", ColorClass: "green"},
	PaymentRefunded: {Label: "Refunded", IconKind: "rotate-ccw", ColorClass: "blue"},
	PaymentFailed:   {Label: "Payment Failed", IconKind: "x-circle", ColorClass: "red"},
}

func (p PaymentStatus) Descriptor() Descriptor {
	if desc, ok := paymentDescriptors[p]; ok {
		return desc
	}

	return UnknownDescriptor
}
