package dto

import (
	"drivio/internal/domains/maintenance/model"
	"drivio/shared"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	gModel "drivio/shared/model"
	"drivio/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateMaintenanceRequest struct {
	CarID         string `json:"car_id"           validate:"required"`
	Description   string `json:"description"      validate:"required,max=1000"`
	Type          string `json:"maintenance_type" validate:"required,oneof=routine repair inspection emergency"`
	Priority      string `json:"priority"         validate:"required,oneof=low medium high urgent"`
	Cost          string `json:"cost"             validate:"omitempty"`
	ScheduledDate string `json:"scheduled_date"   validate:"required"`
}

func (c *CreateMaintenanceRequest) ToModel(user string, cost decimal.Decimal) (model.Record, error) {
	scheduled, err := timezone.Parse(constant.CalendarDateFormat, c.ScheduledDate)
	if err != nil {
		return model.Record{}, err
	}

	return model.Record{
		ID:            uuid.NewString(),
		CarID:         c.CarID,
		Description:   c.Description,
		Type:          model.Type(c.Type),
		Priority:      model.Priority(c.Priority),
		Status:        model.StatusScheduled,
		Cost:          cost,
		ScheduledDate: scheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateMaintenanceRequest struct {
	Description   string `db:"description" json:"description"      validate:"omitempty,max=1000"`
	Priority      string `db:"priority"    json:"priority"         validate:"omitempty,oneof=low medium high urgent"`
	Cost          string `json:"cost"                              validate:"omitempty"`
	ScheduledDate string `json:"scheduled_date"                    validate:"omitempty"`
}

// TransitionRequest moves a record along its lifecycle. Legality of the move
// is decided by the model, not here.
type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type MaintenanceResponse struct {
	ID            string `json:"id"`
	CarID         string `json:"car_id"`
	Description   string `json:"description"`
	Type          string `json:"maintenance_type"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	Cost          string `json:"cost"`
	ScheduledDate string `json:"scheduled_date"`
	CompletedDate string `json:"completed_date,omitempty"`
	gDto.Metadata
}

func (r *MaintenanceResponse) FromModel(mod model.Record) {
	r.ID = mod.ID
	r.CarID = mod.CarID
	r.Description = mod.Description
	r.Type = string(mod.Type)
	r.Priority = string(mod.Priority)
	r.Status = string(mod.Status)
	r.Cost = mod.Cost.StringFixed(2)
	r.ScheduledDate = mod.ScheduledDate.Format(constant.CalendarDateFormat)

	if mod.CompletedDate != nil {
		r.CompletedDate = mod.CompletedDate.Format(constant.CalendarDateFormat)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetMaintenanceResponse struct {
	Records   []MaintenanceResponse `json:"records"`
	TotalPage int                   `json:"total_page"`
	TotalData int                   `json:"total_data"`
}

func (r *GetMaintenanceResponse) FromModels(models []model.Record, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Records = make([]MaintenanceResponse, len(models))
	for i, mod := range models {
		r.Records[i].FromModel(mod)
	}
}
