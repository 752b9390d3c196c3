package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"

	"drivio/config"
	"drivio/infras/kafka"
	"drivio/infras/otel"
	carModel "drivio/internal/domains/car/model"
	carRepo "drivio/internal/domains/car/repository"
	"drivio/internal/domains/rental/model"
	"drivio/internal/domains/rental/model/dto"
	"drivio/internal/domains/rental/repository"
	reviewModel "drivio/internal/domains/review/model"
	reviewRepo "drivio/internal/domains/review/repository"
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
	cacheGetRental    = "rental:get"
	cacheGetAllRental = "rental:gets"
	cacheCountRental  = "rental:count"
)

type Rental interface {
	Create(ctx context.Context, req dto.CreateRentalRequest) (dto.RentalDetailResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentalsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RentalDetailResponse, error)
	Progress(ctx context.Context, id string) (dto.ProgressResponse, error)
	Modify(ctx context.Context, req dto.ModifyRentalRequest, id string) (dto.RentalDetailResponse, error)
	Cancel(ctx context.Context, req dto.CancelRentalRequest, id string) (dto.RentalDetailResponse, error)
	Decide(ctx context.Context, req dto.DecisionRequest, id string) (dto.RentalDetailResponse, error)
	MarkPayment(ctx context.Context, req dto.PaymentRequest, id string) (dto.RentalDetailResponse, error)
	ActivateDue(ctx context.Context) (int, error)
	CompleteDue(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo       repository.Rental
	carRepo    carRepo.Car
	reviewRepo reviewRepo.Review
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
	rates      model.AddonRates

	// inFlight guards each rental against overlapping mutations from the
	// same process. Storage stays untouched while a sibling mutation runs.
	inFlightMu sync.Mutex
	inFlight   map[string]struct{}
}

func New(
	repo repository.Rental,
	carRepo carRepo.Car,
	reviewRepo reviewRepo.Review,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		repo:       repo,
		carRepo:    carRepo,
		reviewRepo: reviewRepo,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafkaClient,
		otel:       otel,
		rates:      addonRatesFromConfig(cfg),
		inFlight:   map[string]struct{}{},
	}
}

// addonRatesFromConfig parses the configured per-day surcharges, falling back
// to the standard rates on any malformed value.
func addonRatesFromConfig(cfg *config.Config) model.AddonRates {
	rates := model.DefaultAddonRates()

	parse := func(raw string, fallback decimal.Decimal) decimal.Decimal {
		if raw == "" {
			return fallback
		}

		val, err := decimal.NewFromString(raw)
		if err != nil {
			log.Error().Err(err).Str("rate", raw).Msg("invalid addon rate in config, using default")

			return fallback
		}

		return val
	}

	rates.Insurance = parse(cfg.Pricing.InsuranceDayRate, rates.Insurance)
	rates.GPS = parse(cfg.Pricing.GPSDayRate, rates.GPS)
	rates.ChildSeat = parse(cfg.Pricing.ChildSeatDayRate, rates.ChildSeat)
	rates.AdditionalDriver = parse(cfg.Pricing.AdditionalDriverDayRate, rates.AdditionalDriver)

	return rates
}

// acquire marks the rental as having a mutation in flight. It fails with a
// conflict when another mutation on the same rental has not finished yet.
func (s *serviceImpl) acquire(id string) error {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	if _, busy := s.inFlight[id]; busy {
		return failure.Conflict("another operation on this rental is still in progress") // nolint:wrapcheck
	}

	s.inFlight[id] = struct{}{}

	return nil
}

func (s *serviceImpl) release(id string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	delete(s.inFlight, id)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRentalRequest) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rng, fields := req.ValidateRange(timezone.Now())
	if len(fields) > 0 {
		return res, failure.Validation(fields) // nolint:wrapcheck
	}

	car, err := s.carRepo.Get(ctx, shared.FilterByID(req.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return res, failure.NotFound("car not found") // nolint:wrapcheck
	}

	if !car.Available {
		return res, failure.BadRequestFromString("car is not available for rental") // nolint:wrapcheck
	}

	days := model.RentalDays(rng.Start, rng.End)
	total := model.Quote(car.DailyRate, days, req.Addons(), s.rates)

	rental := req.ToModel(user, rng, days, total)

	if err = s.repo.Insert(ctx, rental); err != nil {
		log.Error().Err(err).Msg("failed to create rental")

		return res, fmt.Errorf("failed to create rental: %w", err)
	}

	s.publishStatusEvent(ctx, rental, constant.Empty, constant.Empty)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRental)
		shared.InvalidateCaches(c, s.cache, cacheCountRental)
	}()

	res.FromModel(rental, false, timezone.Now())
	res.Car = snapshot(car)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRental, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rentals")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rentals")

		return res, fmt.Errorf("failed to get rentals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rentals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRental, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rentals")

		return res, fmt.Errorf("failed to count rentals: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	reviewed, err := s.alreadyReviewed(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(rental, reviewed, timezone.Now())

	car, err := s.carRepo.Get(ctx, shared.FilterByID(rental.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car for rental")

		return res, fmt.Errorf("failed to get car for rental: %w", err)
	}

	if car.ID != constant.Empty {
		res.Car = snapshot(car)
	}

	return res, nil
}

func (s *serviceImpl) Progress(ctx context.Context, id string) (res dto.ProgressResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Progress")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.RentalID = rental.ID
	res.Status = rental.Status

	if progress, ok := model.ProgressFor(rental.Status, rental.StartDate, rental.EndDate, timezone.Now()); ok {
		res.Progress = &progress
	}

	return res, nil
}

// Modify replaces a rental's dates, locations, and add-ons. The proposed
// window is validated before any storage access; on any field failure the
// rental is left exactly as it was. Days and total are recomputed from the
// car's current daily rate, never taken from the client.
func (s *serviceImpl) Modify(ctx context.Context, req dto.ModifyRentalRequest, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Modify")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rng, fields := req.ValidateRange(timezone.Now())
	if len(fields) > 0 {
		return res, failure.Validation(fields) // nolint:wrapcheck
	}

	if err = s.acquire(id); err != nil {
		return res, err
	}
	defer s.release(id)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if !rental.Status.CanModify() {
		return res, failure.Conflict(fmt.Sprintf("rental in status %q cannot be modified", rental.Status)) // nolint:wrapcheck
	}

	car, err := s.carRepo.Get(ctx, shared.FilterByID(rental.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get car")

		return res, fmt.Errorf("failed to get car: %w", err)
	}

	if car.ID == constant.Empty {
		return res, failure.NotFound("car not found") // nolint:wrapcheck
	}

	days := model.RentalDays(rng.Start, rng.End)
	total := model.Quote(car.DailyRate, days, req.Addons(), s.rates)

	// Add-on flags may transition to false, so the update map is built
	// explicitly instead of going through the zero-value-skipping transform.
	updated := map[string]any{
		model.FieldStartDate:           rng.Start,
		model.FieldEndDate:             rng.End,
		model.FieldPickupLocation:      req.PickupLocation,
		model.FieldDropoffLocation:     req.DropoffLocation,
		model.FieldSpecialRequests:     req.SpecialRequests,
		model.FieldHasInsurance:        req.HasInsurance,
		model.FieldHasGPS:              req.HasGPS,
		model.FieldHasChildSeat:        req.HasChildSeat,
		model.FieldHasAdditionalDriver: req.HasAdditionalDriver,
		model.FieldTotalDays:           days,
		model.FieldTotalAmount:         total,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       user,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update rental")

		return res, fmt.Errorf("failed to update rental: %w", err)
	}

	rental.StartDate = rng.Start
	rental.EndDate = rng.End
	rental.PickupLocation = req.PickupLocation
	rental.DropoffLocation = req.DropoffLocation
	rental.SpecialRequests = req.SpecialRequests
	rental.HasInsurance = req.HasInsurance
	rental.HasGPS = req.HasGPS
	rental.HasChildSeat = req.HasChildSeat
	rental.HasAdditionalDriver = req.HasAdditionalDriver
	rental.TotalDays = days
	rental.TotalAmount = total

	s.publishStatusEvent(ctx, rental, rental.Status, "rental details modified")

	s.invalidateRental(ctx, id)

	res.FromModel(rental, false, timezone.Now())
	res.Car = snapshot(car)

	return res, nil
}

// Cancel moves the rental to cancelled. The request must carry confirm=true;
// without it nothing is read or written.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelRentalRequest, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !req.Confirm {
		return res, failure.BadRequestFromString("cancellation requires explicit confirmation") // nolint:wrapcheck
	}

	if err = s.acquire(id); err != nil {
		return res, err
	}
	defer s.release(id)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if rental.Status.Terminal() {
		return res, failure.Conflict(fmt.Sprintf("rental in status %q is immutable", rental.Status)) // nolint:wrapcheck
	}

	if !rental.Status.CanCancel() {
		return res, failure.Conflict(fmt.Sprintf("rental in status %q cannot be cancelled", rental.Status)) // nolint:wrapcheck
	}

	previous := rental.Status

	if err = s.transition(ctx, &rental, model.StatusCancelled, nil, user); err != nil {
		return res, err
	}

	s.publishStatusEvent(ctx, rental, previous, "rental cancelled by customer")

	s.invalidateRental(ctx, id)

	res.FromModel(rental, false, timezone.Now())

	return res, nil
}

// Decide records the owner's verdict on a pending rental: approved, or
// rejected with a reason.
func (s *serviceImpl) Decide(ctx context.Context, req dto.DecisionRequest, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Decide")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	next := model.Status(req.Status)

	if next == model.StatusRejected && req.RejectionReason == constant.Empty {
		return res, failure.Validation(map[string]string{
			"rejection_reason": "rejection_reason is required when rejecting",
		}) // nolint:wrapcheck
	}

	if err = s.acquire(id); err != nil {
		return res, err
	}
	defer s.release(id)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	if rental.Status != model.StatusPendingApproval {
		return res, failure.Conflict(fmt.Sprintf("rental in status %q is not awaiting approval", rental.Status)) // nolint:wrapcheck
	}

	previous := rental.Status

	var reason *string
	if next == model.StatusRejected {
		reason = &req.RejectionReason
	}

	if err = s.transition(ctx, &rental, next, reason, user); err != nil {
		return res, err
	}

	s.publishStatusEvent(ctx, rental, previous, req.RejectionReason)

	s.invalidateRental(ctx, id)

	res.FromModel(rental, false, timezone.Now())

	return res, nil
}

// MarkPayment updates the payment dimension. It never touches the rental
// lifecycle status.
func (s *serviceImpl) MarkPayment(ctx context.Context, req dto.PaymentRequest, id string) (res dto.RentalDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkPayment")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	next := model.PaymentStatus(req.PaymentStatus)
	if !next.Valid() {
		return res, failure.BadRequestFromString("unknown payment status") // nolint:wrapcheck
	}

	if err = s.acquire(id); err != nil {
		return res, err
	}
	defer s.release(id)

	rental, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	updated := map[string]any{
		model.FieldPaymentStatus: next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update payment status")

		return res, fmt.Errorf("failed to update payment status: %w", err)
	}

	rental.PaymentStatus = next

	s.invalidateRental(ctx, id)

	res.FromModel(rental, false, timezone.Now())

	return res, nil
}

// ActivateDue promotes approved rentals whose start date has arrived.
func (s *serviceImpl) ActivateDue(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActivateDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	due, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusApproved,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldStartDate,
				Value:    timezone.Now(),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list rentals due for activation")

		return 0, fmt.Errorf("failed to list rentals due for activation: %w", err)
	}

	return s.sweep(ctx, due, model.StatusActive, "rental period started")
}

// CompleteDue closes active rentals whose end-of-day has passed.
func (s *serviceImpl) CompleteDue(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CompleteDue")
	defer scope.End()
	defer scope.TraceIfError(err)

	// A rental runs through the end of its last calendar day; anything
	// ending before today has fully elapsed.
	cutoff := timezone.Now().AddDate(0, 0, -1)

	due, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusActive,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldEndDate,
				Value:    cutoff,
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list rentals due for completion")

		return 0, fmt.Errorf("failed to list rentals due for completion: %w", err)
	}

	return s.sweep(ctx, due, model.StatusCompleted, "rental period ended")
}

func (s *serviceImpl) sweep(ctx context.Context, due []model.Rental, next model.Status, reason string) (int, error) {
	count := 0

	for i := range due {
		rental := due[i]

		if err := s.acquire(rental.ID); err != nil {
			continue
		}

		previous := rental.Status

		err := s.transition(ctx, &rental, next, nil, constant.SystemUser)

		s.release(rental.ID)

		if err != nil {
			log.Error().Err(err).Str("rental_id", rental.ID).Msg("failed to sweep rental")

			continue
		}

		s.publishStatusEvent(ctx, rental, previous, reason)
		s.invalidateRental(ctx, rental.ID)

		count++
	}

	if count > 0 {
		log.Info().Int("count", count).Str("status", string(next)).Msg("swept rentals")
	}

	return count, nil
}

// load fetches the rental or reports not found. The raw model is cached, not
// the response shape: permissions and progress are derived from the clock and
// must be recomputed on every read.
func (s *serviceImpl) load(ctx context.Context, id string) (rental model.Rental, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetRental, id)

	err = s.cache.Get(ctx, cacheKey, &rental)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rental")

		return rental, nil
	}

	rental, err = s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental")

		return rental, fmt.Errorf("failed to get rental: %w", err)
	}

	if rental.ID == constant.Empty {
		return rental, failure.NotFound("rental not found") // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, rental, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rental to cache")
		}
	}()

	return rental, nil
}

func (s *serviceImpl) alreadyReviewed(ctx context.Context, rentalID string) (bool, error) {
	reviewed, err := s.reviewRepo.Exist(ctx, shared.FilterByID(rentalID, reviewModel.FieldRentalID, reviewModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check rental review")

		return false, fmt.Errorf("failed to check rental review: %w", err)
	}

	return reviewed, nil
}

// transition persists a status change and mirrors it onto the in-memory
// rental so callers return the authoritative post-write state.
func (s *serviceImpl) transition(ctx context.Context, rental *model.Rental, next model.Status, rejectionReason *string, user string) error {
	updated := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if rejectionReason != nil {
		updated[model.FieldRejectionReason] = *rejectionReason
	}

	if err := s.repo.Update(ctx, updated, shared.FilterByID(rental.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update rental status")

		return fmt.Errorf("failed to update rental status: %w", err)
	}

	rental.Status = next
	rental.RejectionReason = rejectionReason

	return nil
}

func (s *serviceImpl) publishStatusEvent(ctx context.Context, rental model.Rental, previous model.Status, reason string) {
	event := model.StatusEvent{
		RentalID:       rental.ID,
		CustomerID:     rental.CustomerID,
		CarID:          rental.CarID,
		Status:         rental.Status,
		PreviousStatus: previous,
		Reason:         reason,
		OccurredAt:     timezone.Now(),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.RentalEvents, kafka.Message{
			Key:   rental.ID,
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("rental_id", rental.ID).Msg("failed to publish rental status event")
		}
	}()
}

func (s *serviceImpl) invalidateRental(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRental, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete rental from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRental)
		shared.InvalidateCaches(c, s.cache, cacheCountRental)
	}()
}

func snapshot(car carModel.Car) *dto.CarSnapshot {
	return &dto.CarSnapshot{
		ID:        car.ID,
		Name:      car.Name,
		Brand:     car.Brand,
		Model:     car.CarModel,
		Year:      car.Year,
		DailyRate: car.DailyRate.StringFixed(2),
		ImageURL:  car.ImageURL,
	}
}
