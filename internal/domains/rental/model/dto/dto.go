package dto

import (
	"time"

	"drivio/internal/domains/rental/model"
	"drivio/shared"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	gModel "drivio/shared/model"
	"drivio/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	msgStartRequired = "start_date is required"
	msgEndRequired   = "end_date is required"
	msgStartInvalid  = "start_date must be a valid date (YYYY-MM-DD)"
	msgEndInvalid    = "end_date must be a valid date (YYYY-MM-DD)"
	msgEndNotAfter   = "end_date must be after start_date"
	msgStartNotAhead = "start_date must be in the future"
)

// DateRange is the validated outcome of the pre-flight date gate.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// validateRange applies the pre-flight rules for a proposed rental window:
// both dates present and well-formed, end strictly after start, start
// strictly in the future. It reports every failing rule keyed by field name;
// callers must not touch storage when the map is non-empty.
func validateRange(startDate, endDate string, now time.Time) (DateRange, map[string]string) {
	fields := map[string]string{}

	var rng DateRange

	switch {
	case startDate == "":
		fields[model.FieldStartDate] = msgStartRequired
	default:
		start, err := timezone.Parse(constant.CalendarDateFormat, startDate)
		if err != nil {
			fields[model.FieldStartDate] = msgStartInvalid
		} else {
			rng.Start = start
		}
	}

	switch {
	case endDate == "":
		fields[model.FieldEndDate] = msgEndRequired
	default:
		end, err := timezone.Parse(constant.CalendarDateFormat, endDate)
		if err != nil {
			fields[model.FieldEndDate] = msgEndInvalid
		} else {
			rng.End = end
		}
	}

	if !rng.Start.IsZero() && !rng.End.IsZero() && !rng.End.After(rng.Start) {
		fields[model.FieldEndDate] = msgEndNotAfter
	}

	if !rng.Start.IsZero() && !rng.Start.After(now) {
		fields[model.FieldStartDate] = msgStartNotAhead
	}

	if len(fields) > 0 {
		return DateRange{}, fields
	}

	return rng, nil
}

type CreateRentalRequest struct {
	CarID               string `json:"car_id"                validate:"required"`
	StartDate           string `json:"start_date"            validate:"required"`
	EndDate             string `json:"end_date"              validate:"required"`
	PickupLocation      string `json:"pickup_location"       validate:"omitempty,max=200"`
	DropoffLocation     string `json:"dropoff_location"      validate:"omitempty,max=200"`
	SpecialRequests     string `json:"special_requests"      validate:"omitempty,max=1000"`
	HasInsurance        bool   `json:"has_insurance"`
	HasGPS              bool   `json:"has_gps"`
	HasChildSeat        bool   `json:"has_child_seat"`
	HasAdditionalDriver bool   `json:"has_additional_driver"`
}

// ValidateRange runs the date gate for a new reservation.
func (c *CreateRentalRequest) ValidateRange(now time.Time) (DateRange, map[string]string) {
	return validateRange(c.StartDate, c.EndDate, now)
}

func (c *CreateRentalRequest) Addons() model.Addons {
	return model.Addons{
		Insurance:        c.HasInsurance,
		GPS:              c.HasGPS,
		ChildSeat:        c.HasChildSeat,
		AdditionalDriver: c.HasAdditionalDriver,
	}
}

// ToModel builds the rental a new reservation inserts: always
// pending_approval with payment pending, priced server-side.
func (c *CreateRentalRequest) ToModel(customer string, rng DateRange, days int, total decimal.Decimal) model.Rental {
	return model.Rental{
		ID:                  uuid.NewString(),
		CarID:               c.CarID,
		CustomerID:          customer,
		StartDate:           rng.Start,
		EndDate:             rng.End,
		PickupLocation:      c.PickupLocation,
		DropoffLocation:     c.DropoffLocation,
		SpecialRequests:     c.SpecialRequests,
		HasInsurance:        c.HasInsurance,
		HasGPS:              c.HasGPS,
		HasChildSeat:        c.HasChildSeat,
		HasAdditionalDriver: c.HasAdditionalDriver,
		TotalDays:           days,
		TotalAmount:         total,
		Status:              model.StatusPendingApproval,
		PaymentStatus:       model.PaymentPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customer,
			ModifiedBy: customer,
		},
	}
}

// ModifyRentalRequest proposes a full replacement of a rental's mutable
// fields. The server recomputes days and total from the proposed range and
// the car's current rate; client-supplied totals are never trusted.
type ModifyRentalRequest struct {
	StartDate           string `json:"start_date"            validate:"required"`
	EndDate             string `json:"end_date"              validate:"required"`
	PickupLocation      string `json:"pickup_location"       validate:"omitempty,max=200"`
	DropoffLocation     string `json:"dropoff_location"      validate:"omitempty,max=200"`
	SpecialRequests     string `json:"special_requests"      validate:"omitempty,max=1000"`
	HasInsurance        bool   `json:"has_insurance"`
	HasGPS              bool   `json:"has_gps"`
	HasChildSeat        bool   `json:"has_child_seat"`
	HasAdditionalDriver bool   `json:"has_additional_driver"`
}

func (m *ModifyRentalRequest) ValidateRange(now time.Time) (DateRange, map[string]string) {
	return validateRange(m.StartDate, m.EndDate, now)
}

func (m *ModifyRentalRequest) Addons() model.Addons {
	return model.Addons{
		Insurance:        m.HasInsurance,
		GPS:              m.HasGPS,
		ChildSeat:        m.HasChildSeat,
		AdditionalDriver: m.HasAdditionalDriver,
	}
}

// CancelRentalRequest carries the explicit confirmation gate: cancellation is
// destructive, so the caller must send confirm=true for the request to be
// acted on at all.
type CancelRentalRequest struct {
	Confirm bool `json:"confirm" validate:"required"`
}

// DecisionRequest is the owner/admin approval verdict on a pending rental.
type DecisionRequest struct {
	Status          string `json:"status"           validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
}

// PaymentRequest updates the payment dimension independently of the rental
// lifecycle.
type PaymentRequest struct {
	PaymentStatus string `json:"payment_status" validate:"required,oneof=pending paid refunded failed"`
}

// CarSnapshot is the read-only view of the rented car embedded in rental
// responses.
type CarSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	Model     string `json:"model"`
	Year      int    `json:"year"`
	DailyRate string `json:"daily_rate"`
	ImageURL  string `json:"image_url,omitempty"`
}

type RentalResponse struct {
	ID                  string              `json:"id"`
	CarID               string              `json:"car_id"`
	CustomerID          string              `json:"customer_id"`
	StartDate           string              `json:"start_date"`
	EndDate             string              `json:"end_date"`
	PickupLocation      string              `json:"pickup_location,omitempty"`
	DropoffLocation     string              `json:"dropoff_location,omitempty"`
	SpecialRequests     string              `json:"special_requests,omitempty"`
	HasInsurance        bool                `json:"has_insurance"`
	HasGPS              bool                `json:"has_gps"`
	HasChildSeat        bool                `json:"has_child_seat"`
	HasAdditionalDriver bool                `json:"has_additional_driver"`
	TotalDays           int                 `json:"total_days"`
	TotalAmount         string              `json:"total_amount"`
	Status              model.Status        `json:"status"`
	StatusDisplay       model.Descriptor    `json:"status_display"`
	PaymentStatus       model.PaymentStatus `json:"payment_status"`
	PaymentDisplay      model.Descriptor    `json:"payment_display"`
	RejectionReason     string              `json:"rejection_reason,omitempty"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(mod model.Rental) {
	r.ID = mod.ID
	r.CarID = mod.CarID
	r.CustomerID = mod.CustomerID
	r.StartDate = mod.StartDate.Format(constant.CalendarDateFormat)
	r.EndDate = mod.EndDate.Format(constant.CalendarDateFormat)
	r.PickupLocation = mod.PickupLocation
	r.DropoffLocation = mod.DropoffLocation
	r.SpecialRequests = mod.SpecialRequests
	r.HasInsurance = mod.HasInsurance
	r.HasGPS = mod.HasGPS
	r.HasChildSeat = mod.HasChildSeat
	r.HasAdditionalDriver = mod.HasAdditionalDriver
	r.TotalDays = mod.TotalDays
	r.TotalAmount = mod.TotalAmount.StringFixed(2)
	r.Status = mod.Status
	r.StatusDisplay = mod.Status.Descriptor()
	r.PaymentStatus = mod.PaymentStatus
	r.PaymentDisplay = mod.PaymentStatus.Descriptor()

	if mod.RejectionReason != nil {
		r.RejectionReason = *mod.RejectionReason
	}

	r.Metadata.FromModel(mod.Metadata)
}

// Permissions are the derived action flags a client renders controls from.
// A disabled control is the first guard; the service re-checks on mutation.
type Permissions struct {
	CanModify bool `json:"can_modify"`
	CanCancel bool `json:"can_cancel"`
	CanReview bool `json:"can_review"`
}

type RentalDetailResponse struct {
	RentalResponse
	Car         *CarSnapshot    `json:"car,omitempty"`
	Permissions Permissions     `json:"permissions"`
	Progress    *model.Progress `json:"progress,omitempty"`
}

func (r *RentalDetailResponse) FromModel(mod model.Rental, alreadyReviewed bool, now time.Time) {
	r.RentalResponse.FromModel(mod)

	r.Permissions = Permissions{
		CanModify: mod.Status.CanModify(),
		CanCancel: mod.Status.CanCancel(),
		CanReview: mod.Status.CanReview(alreadyReviewed),
	}

	if progress, ok := model.ProgressFor(mod.Status, mod.StartDate, mod.EndDate, now); ok {
		r.Progress = &progress
	}
}

type ProgressResponse struct {
	RentalID string          `json:"rental_id"`
	Status   model.Status    `json:"status"`
	Progress *model.Progress `json:"progress,omitempty"`
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.Rental, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}
