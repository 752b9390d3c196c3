package dto

import (
	"mime/multipart"

	"drivio/internal/domains/car/model"
	"drivio/shared"
	gDto "drivio/shared/dto"
	gModel "drivio/shared/model"
	"drivio/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCarRequest struct {
	Name      string `json:"name"       validate:"required,max=100"`
	Brand     string `json:"brand"      validate:"required,max=60"`
	CarModel  string `json:"car_model"  validate:"required,max=60"`
	Year      int    `json:"year"       validate:"required,gte=1950,lte=2100"`
	DailyRate string `json:"daily_rate" validate:"required"`
	Available *bool  `json:"available"  validate:"omitempty"`
}

// ToModel builds a listing. The daily rate string has already been parsed by
// the caller so a malformed amount is rejected before this point.
func (c *CreateCarRequest) ToModel(owner string, rate decimal.Decimal) model.Car {
	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.Car{
		ID:        uuid.NewString(),
		OwnerID:   owner,
		Name:      c.Name,
		Brand:     c.Brand,
		CarModel:  c.CarModel,
		Year:      c.Year,
		DailyRate: rate,
		Available: available,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  owner,
			ModifiedBy: owner,
		},
	}
}

type UpdateCarRequest struct {
	Name      string `db:"name"       json:"name"       validate:"omitempty,max=100"`
	Brand     string `db:"brand"      json:"brand"      validate:"omitempty,max=60"`
	CarModel  string `db:"car_model"  json:"car_model"  validate:"omitempty,max=60"`
	Year      int    `db:"year"       json:"year"       validate:"omitempty,gte=1950,lte=2100"`
	DailyRate string `json:"daily_rate"                 validate:"omitempty"`
	Available *bool  `json:"available"                  validate:"omitempty"`
}

type CarResponse struct {
	ID        string `json:"id"`
	OwnerID   string `json:"owner_id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	CarModel  string `json:"car_model"`
	Year      int    `json:"year"`
	DailyRate string `json:"daily_rate"`
	ImageURL  string `json:"image_url,omitempty"`
	Available bool   `json:"available"`
	gDto.Metadata
}

func (r *CarResponse) FromModel(mod model.Car) {
	r.ID = mod.ID
	r.OwnerID = mod.OwnerID
	r.Name = mod.Name
	r.Brand = mod.Brand
	r.CarModel = mod.CarModel
	r.Year = mod.Year
	r.DailyRate = mod.DailyRate.StringFixed(2)
	r.ImageURL = mod.ImageURL
	r.Available = mod.Available
	r.Metadata.FromModel(mod.Metadata)
}

type GetCarsResponse struct {
	Cars      []CarResponse `json:"cars"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetCarsResponse) FromModels(models []model.Car, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Cars = make([]CarResponse, len(models))
	for i, mod := range models {
		r.Cars[i].FromModel(mod)
	}
}

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg"`
	ImageFile multipart.File        `json:"-"`
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}
