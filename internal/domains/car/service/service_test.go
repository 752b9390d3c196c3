package service_test

import (
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drivio/config"
	"drivio/infras/otel/mocks"
	s3Mocks "drivio/infras/s3/mocks"
	carMocks "drivio/internal/domains/car/mocks"
	"drivio/internal/domains/car/model/dto"
	"drivio/internal/domains/car/service"
	rentalMocks "drivio/internal/domains/rental/mocks"
	cacheMocks "drivio/shared/cache/mocks"
	"drivio/shared/failure"
)

type bundle struct {
	repo       *carMocks.MockCar
	rentalRepo *rentalMocks.MockRental
	cache      *cacheMocks.MockRedisCache
	s3         *s3Mocks.MockS3
}

func newService(ctrl *gomock.Controller, cfg *config.Config) (service.Car, bundle) {
	b := bundle{
		repo:       carMocks.NewMockCar(ctrl),
		rentalRepo: rentalMocks.NewMockRental(ctrl),
		cache:      cacheMocks.NewMockRedisCache(ctrl),
		s3:         s3Mocks.NewMockS3(ctrl),
	}

	svc := service.New(b.repo, b.rentalRepo, cfg, b.cache, mocks.NewOtel(), b.s3)

	return svc, b
}

func allowAsync(b bundle) {
	b.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
	b.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	b.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	b.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestCarService_Delete(t *testing.T) {
	t.Run("missing car is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl, &config.Config{})

		b.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "car-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("car with rentals in progress is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl, &config.Config{})

		b.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		b.rentalRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		b.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

		err := svc.Delete(context.Background(), "car-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("idle car is deleted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl, &config.Config{})
		allowAsync(b)

		b.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		b.rentalRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		b.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "car-1")

		assert.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestCarService_UploadImage(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.S3.BucketName = "drivio-assets"
	cfg.External.S3.CarImageDir = "cars"

	header := &multipart.FileHeader{Filename: "front.jpg"}
	req := dto.UploadImageRequest{Image: header}

	t.Run("missing car is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl, cfg)

		b.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.UploadImage(context.Background(), req, "car-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("uploaded image url is persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl, cfg)
		allowAsync(b)

		b.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		b.s3.EXPECT().
			UploadFile(gomock.Any(), "drivio-assets", "cars", gomock.Any(), header, "front.jpg").
			Return("https://cdn.example.com/cars/front.jpg", nil)

		var captured map[string]any

		b.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update map[string]any, _ any) error {
				captured = update

				return nil
			})

		res, err := svc.UploadImage(context.Background(), req, "car-1")

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/cars/front.jpg", res.ImageURL)
		assert.Equal(t, "https://cdn.example.com/cars/front.jpg", captured["image_url"])

		time.Sleep(10 * time.Millisecond)
	})
}
