package dto

import (
	"drivio/internal/domains/review/model"
	"drivio/shared"
	gDto "drivio/shared/dto"
	gModel "drivio/shared/model"
	"drivio/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RentalID string `json:"rental_id" validate:"required"`
	Rating   int    `json:"rating"    validate:"required,min=1,max=5"`
	Comment  string `json:"comment"   validate:"omitempty,max=2000"`
}

func (c *CreateReviewRequest) ToModel(customerID, carID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		RentalID:   c.RentalID,
		CustomerID: customerID,
		CarID:      carID,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type ReviewResponse struct {
	ID         string `json:"id"`
	RentalID   string `json:"rental_id"`
	CustomerID string `json:"customer_id"`
	CarID      string `json:"car_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.RentalID = mod.RentalID
	r.CustomerID = mod.CustomerID
	r.CarID = mod.CarID
	r.Rating = mod.Rating
	r.Comment = mod.Comment

	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
