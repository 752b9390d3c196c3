package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"drivio/config"
	"drivio/infras/otel"
	carModel "drivio/internal/domains/car/model"
	carRepo "drivio/internal/domains/car/repository"
	"drivio/internal/domains/maintenance/model"
	"drivio/internal/domains/maintenance/model/dto"
	"drivio/internal/domains/maintenance/repository"
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
	cacheGetMaintenance    = "maintenance:get"
	cacheGetAllMaintenance = "maintenance:gets"
	cacheCountMaintenance  = "maintenance:count"
)

type Maintenance interface {
	Create(ctx context.Context, req dto.CreateMaintenanceRequest) (dto.MaintenanceResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMaintenanceResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.MaintenanceResponse, error)
	Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) error
	Transition(ctx context.Context, req dto.TransitionRequest, id string) (dto.MaintenanceResponse, error)
	Delete(ctx context.Context, id string) error
	EscalateOverdue(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo    repository.Maintenance
	carRepo carRepo.Car
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Maintenance, carRepo carRepo.Car, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Maintenance {
	return &serviceImpl{
		repo:    repo,
		carRepo: carRepo,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMaintenanceRequest) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	carExists, err := s.carRepo.Exist(ctx, shared.FilterByID(req.CarID, carModel.FieldID, carModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if car exists")

		return res, fmt.Errorf("failed to check if car exists: %w", err)
	}

	if !carExists {
		return res, failure.NotFound("car not found") // nolint:wrapcheck
	}

	cost := decimal.Zero

	if req.Cost != constant.Empty {
		cost, err = decimal.NewFromString(req.Cost)
		if err != nil || cost.IsNegative() {
			return res, failure.Validation(map[string]string{
				model.FieldCost: "cost must be a non-negative amount",
			}) // nolint:wrapcheck
		}
	}

	record, err := req.ToModel(user, cost)
	if err != nil {
		return res, failure.Validation(map[string]string{
			model.FieldScheduledDate: "scheduled_date must be a valid date (YYYY-MM-DD)",
		}) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to create maintenance record")

		return res, fmt.Errorf("failed to create maintenance record: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllMaintenance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance records")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance records")

		return res, fmt.Errorf("failed to count maintenance records: %w", err)
	}

	records, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance records")

		return res, fmt.Errorf("failed to get maintenance records: %w", err)
	}

	res.FromModels(records, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance records to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountMaintenance, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance records")

		return total, fmt.Errorf("failed to count maintenance records: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetMaintenance, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance record")

		return res, nil
	}

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance record to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMaintenanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	record, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if record.Status.Terminal() {
		return failure.Conflict(fmt.Sprintf("maintenance record in status %q is immutable", record.Status)) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Cost != constant.Empty {
		cost, err := decimal.NewFromString(req.Cost)
		if err != nil || cost.IsNegative() {
			return failure.Validation(map[string]string{
				model.FieldCost: "cost must be a non-negative amount",
			}) // nolint:wrapcheck
		}

		updatedFields[model.FieldCost] = cost
	}

	if req.ScheduledDate != constant.Empty {
		scheduled, err := timezone.Parse(constant.CalendarDateFormat, req.ScheduledDate)
		if err != nil {
			return failure.Validation(map[string]string{
				model.FieldScheduledDate: "scheduled_date must be a valid date (YYYY-MM-DD)",
			}) // nolint:wrapcheck
		}

		updatedFields[model.FieldScheduledDate] = scheduled
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update maintenance record")

		return fmt.Errorf("failed to update maintenance record: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Transition moves a record along its lifecycle. Illegal moves are refused
// per the model's transition table; completion stamps the completed date.
func (s *serviceImpl) Transition(ctx context.Context, req dto.TransitionRequest, id string) (res dto.MaintenanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	record, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	next := model.Status(req.Status)

	if !record.Status.CanTransition(next) {
		return res, failure.Conflict(fmt.Sprintf("cannot move maintenance record from %q to %q", record.Status, next)) // nolint:wrapcheck
	}

	updated := map[string]any{
		model.FieldStatus:        next,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if next == model.StatusCompleted {
		now := timezone.Now()
		updated[model.FieldCompletedDate] = now
		record.CompletedDate = &now
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to transition maintenance record")

		return res, fmt.Errorf("failed to transition maintenance record: %w", err)
	}

	record.Status = next

	s.invalidate(ctx, id)

	res.FromModel(record)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if maintenance record exists")

		return fmt.Errorf("failed to check if maintenance record exists: %w", err)
	}

	if !exist {
		return failure.NotFound("maintenance record not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete maintenance record")

		return fmt.Errorf("failed to delete maintenance record: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// EscalateOverdue raises still-scheduled records whose scheduled date has
// passed to urgent priority so they surface at the top of the work queue.
func (s *serviceImpl) EscalateOverdue(ctx context.Context) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EscalateOverdue")
	defer scope.End()
	defer scope.TraceIfError(err)

	overdue, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Value:    model.StatusScheduled,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldScheduledDate,
				Value:    timezone.Now(),
				Operator: gDto.FilterOperatorLessEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldPriority,
				Value:    model.PriorityUrgent,
				Operator: gDto.FilterOperatorNotEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to list overdue maintenance records")

		return 0, fmt.Errorf("failed to list overdue maintenance records: %w", err)
	}

	for i := range overdue {
		record := overdue[i]

		updated := map[string]any{
			model.FieldPriority:      model.PriorityUrgent,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: constant.SystemUser,
		}

		if err := s.repo.Update(ctx, updated, shared.FilterByID(record.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("maintenance_id", record.ID).Msg("failed to escalate maintenance record")

			continue
		}

		s.invalidate(ctx, record.ID)

		count++
	}

	if count > 0 {
		log.Info().Int("count", count).Msg("escalated overdue maintenance records")
	}

	return count, nil
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Record, error) {
	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance record")

		return record, fmt.Errorf("failed to get maintenance record: %w", err)
	}

	if record.ID == constant.Empty {
		return record, failure.NotFound("maintenance record not found") // nolint:wrapcheck
	}

	return record, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetMaintenance, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance record from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllMaintenance)
		shared.InvalidateCaches(c, s.cache, cacheCountMaintenance)
	}()
}
