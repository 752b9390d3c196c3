package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drivio/config"
	"drivio/infras/otel/mocks"
	rentalMocks "drivio/internal/domains/rental/mocks"
	rentalModel "drivio/internal/domains/rental/model"
	reviewMocks "drivio/internal/domains/review/mocks"
	"drivio/internal/domains/review/model"
	"drivio/internal/domains/review/model/dto"
	"drivio/internal/domains/review/service"
	cacheMocks "drivio/shared/cache/mocks"
	"drivio/shared/constant"
	"drivio/shared/failure"
)

type bundle struct {
	repo       *reviewMocks.MockReview
	rentalRepo *rentalMocks.MockRental
	cache      *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Review, bundle) {
	b := bundle{
		repo:       reviewMocks.NewMockReview(ctrl),
		rentalRepo: rentalMocks.NewMockRental(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(b.repo, b.rentalRepo, &config.Config{}, b.cache, mocks.NewOtel())

	return svc, b
}

func allowAsync(b bundle) {
	b.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	b.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func userContext(id string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, id)
}

func completedRental(customerID string) rentalModel.Rental {
	return rentalModel.Rental{
		ID:         "rental-1",
		CarID:      "car-1",
		CustomerID: customerID,
		Status:     rentalModel.StatusCompleted,
	}
}

func TestReviewService_Create(t *testing.T) {
	validReq := dto.CreateReviewRequest{
		RentalID: "rental-1",
		Rating:   5,
		Comment:  "great car",
	}

	t.Run("missing rental is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		b.rentalRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(rentalModel.Rental{}, nil)

		_, err := svc.Create(userContext("customer-1"), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("only the renting customer may review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		b.rentalRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completedRental("someone-else"), nil)

		_, err := svc.Create(userContext("customer-1"), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("incomplete rental is not eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		rental := completedRental("customer-1")
		rental.Status = rentalModel.StatusActive

		b.rentalRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(rental, nil)

		b.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Create(userContext("customer-1"), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("second review on the same rental is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		b.rentalRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completedRental("customer-1"), nil)

		b.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := svc.Create(userContext("customer-1"), validReq)

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("eligible rental gets its review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.rentalRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(completedRental("customer-1"), nil)

		b.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Review

		b.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, review model.Review) error {
				inserted = review

				return nil
			})

		res, err := svc.Create(userContext("customer-1"), validReq)

		assert.NoError(t, err)
		assert.Equal(t, "customer-1", inserted.CustomerID)
		assert.Equal(t, "car-1", inserted.CarID, "the car is resolved from the rental, not the request")
		assert.Equal(t, 5, inserted.Rating)
		assert.Equal(t, 5, res.Rating)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestReviewService_Delete(t *testing.T) {
	t.Run("author may delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Review{ID: "review-1", CustomerID: "customer-1"}, nil)

		b.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(userContext("customer-1"), "review-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("admin may delete someone else's review", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Review{ID: "review-1", CustomerID: "customer-1"}, nil)

		b.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		ctx := context.WithValue(userContext("admin-1"), constant.ContextKeyUserRole, constant.RoleAdmin)
		err := svc.Delete(ctx, "review-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("stranger may not delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Review{ID: "review-1", CustomerID: "customer-1"}, nil)

		ctx := context.WithValue(userContext("other-1"), constant.ContextKeyUserRole, constant.RoleCustomer)
		err := svc.Delete(ctx, "review-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})
}
