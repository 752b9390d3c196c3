package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"drivio/config"
	"drivio/infras/otel"
	"drivio/infras/s3"
	"drivio/internal/domains/car/model"
	"drivio/internal/domains/car/model/dto"
	"drivio/internal/domains/car/repository"
	rentalModel "drivio/internal/domains/rental/model"
	rentalRepo "drivio/internal/domains/rental/repository"
	"drivio/shared"
	"drivio/shared/cache"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	"drivio/shared/failure"
	"drivio/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetCar    = "car:get"
	cacheGetAllCar = "car:gets"
	cacheCountCar  = "car:count"
)

type Car interface {
	Create(ctx context.Context, req dto.CreateCarRequest) (dto.CarResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCarsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CarResponse, error)
	Update(ctx context.Context, req dto.UpdateCarRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (dto.UploadImageResponse, error)
}

type serviceImpl struct {
	repo       repository.Car
	rentalRepo rentalRepo.Rental
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
	s3         s3.S3
}

func New(repo repository.Car, rentalRepo rentalRepo.Rental, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Car {
	return &serviceImpl{
		repo:       repo,
		rentalRepo: rentalRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
		s3:         s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCarRequest) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rate, err := decimal.NewFromString(req.DailyRate)
	if err != nil || rate.IsNegative() {
		return res, failure.Validation(map[string]string{
			model.FieldDailyRate: "daily_rate must be a non-negative amount",
		}) // nolint:wrapcheck
	}

	car := req.ToModel(user, rate)

	if err = s.repo.Insert(ctx, car); err != nil {
		log.Error().Err(err).Msg("failed to create car")

		return res, fmt.Errorf("failed to create car: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllCar)
		shared.InvalidateCaches(c, s.cache, cacheCountCar)
	}()

	res.FromModel(car)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCarsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCar, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for cars")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return res, fmt.Errorf("failed to count cars: %w", err)
	}

	cars, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get cars")

		return res, fmt.Errorf("failed to get cars: %w", err)
	}

	res.FromModels(cars, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save cars to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCar, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count cars")

		return total, fmt.Errorf("failed to count cars: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save car count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCar, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for car")

		return res, nil
	}

	car, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return res, failure.NotFound("car not found") // nolint:wrapcheck
	}

	res.FromModel(car)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save car to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCarRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !exist {
		return failure.NotFound("car not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.DailyRate != constant.Empty {
		rate, err := decimal.NewFromString(req.DailyRate)
		if err != nil || rate.IsNegative() {
			return failure.Validation(map[string]string{
				model.FieldDailyRate: "daily_rate must be a non-negative amount",
			}) // nolint:wrapcheck
		}

		updatedFields[model.FieldDailyRate] = rate
	}

	if req.Available != nil {
		updatedFields[model.FieldAvailable] = *req.Available
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update car")

		return fmt.Errorf("failed to update car: %w", err)
	}

	s.invalidateCar(ctx, id)

	return nil
}

// Delete removes a listing. A car with a rental that is still pending,
// approved, or active stays in the catalog.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !exist {
		return failure.NotFound("car not found") // nolint:wrapcheck
	}

	busy, err := s.rentalRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    rentalModel.FieldCarID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    rentalModel.TableName,
			},
			gDto.Filter{
				ArgName:  "active_statuses",
				Field:    rentalModel.FieldStatus,
				Value:    []rentalModel.Status{rentalModel.StatusPendingApproval, rentalModel.StatusApproved, rentalModel.StatusActive},
				Operator: gDto.FilterOperatorIn,
				Table:    rentalModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check car rentals")

		return fmt.Errorf("failed to check car rentals: %w", err)
	}

	if busy {
		return failure.Conflict("car has rentals in progress") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete car")

		return fmt.Errorf("failed to delete car: %w", err)
	}

	s.invalidateCar(ctx, id)

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadImageRequest, id string) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return res, fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("car not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName

	url, err := s.s3.UploadFile(ctx, bucketName, s.cfg.External.S3.CarImageDir, req.ImageFile, req.Image, req.Image.Filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload file to S3")

		return res, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	updated := map[string]any{
		model.FieldImageURL:      url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updated, filter); err != nil {
		log.Error().Err(err).Msg("failed to save car image url")

		return res, fmt.Errorf("failed to save car image url: %w", err)
	}

	s.invalidateCar(ctx, id)

	res.ImageURL = url

	return res, nil
}

func (s *serviceImpl) invalidateCar(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCar, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete car from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCar)
		shared.InvalidateCaches(c, s.cache, cacheCountCar)
	}()
}
