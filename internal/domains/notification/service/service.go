package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"drivio/config"
	"drivio/infras/otel"
	"drivio/internal/domains/notification/model"
	"drivio/internal/domains/notification/model/dto"
	"drivio/internal/domains/notification/repository"
	rentalModel "drivio/internal/domains/rental/model"
	"drivio/shared"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	"drivio/shared/failure"
	gModel "drivio/shared/model"
	"drivio/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Notification interface {
	CreateFromEvent(ctx context.Context, event rentalModel.StatusEvent) error
	List(ctx context.Context, req gDto.QueryParams, recipientID string) (dto.GetNotificationsResponse, error)
	UnreadCount(ctx context.Context, recipientID string) (int, error)
	MarkRead(ctx context.Context, id, recipientID string) error
	MarkAllRead(ctx context.Context, recipientID string) error
}

type serviceImpl struct {
	repo repository.Notification
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Notification, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

// CreateFromEvent materializes a rental status event into the customer's
// notification feed. Events for statuses with no notification mapping are
// dropped silently.
func (s *serviceImpl) CreateFromEvent(ctx context.Context, event rentalModel.StatusEvent) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateFromEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	kind, title, body, ok := describe(event)
	if !ok {
		log.Debug().Str("status", string(event.Status)).Msg("no notification mapping for rental status")

		return nil
	}

	notification := model.Notification{
		ID:          uuid.NewString(),
		RecipientID: event.CustomerID,
		RentalID:    event.RentalID,
		Kind:        kind,
		Title:       title,
		Body:        body,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.SystemUser,
			ModifiedBy: constant.SystemUser,
		},
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("rental_id", event.RentalID).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func describe(event rentalModel.StatusEvent) (kind model.Kind, title, body string, ok bool) {
	// An unchanged status means the rental's details were edited in place.
	if event.Status == event.PreviousStatus {
		return model.KindRentalModified, "Rental updated", "Your rental details have been updated.", true
	}

	switch event.Status {
	case rentalModel.StatusApproved:
		return model.KindRentalApproved, "Rental approved", "Your rental request has been approved.", true
	case rentalModel.StatusRejected:
		body := "Your rental request has been rejected."
		if event.Reason != constant.Empty {
			body = fmt.Sprintf("Your rental request has been rejected: %s", event.Reason)
		}

		return model.KindRentalRejected, "Rental rejected", body, true
	case rentalModel.StatusActive:
		return model.KindRentalActive, "Rental started", "Your rental period has started. Enjoy the ride!", true
	case rentalModel.StatusCompleted:
		return model.KindRentalCompleted, "Rental completed", "Your rental is complete. You can now leave a review.", true
	case rentalModel.StatusCancelled:
		return model.KindRentalCancelled, "Rental cancelled", "Your rental has been cancelled.", true
	}

	return kind, title, body, false
}

func (s *serviceImpl) List(ctx context.Context, req gDto.QueryParams, recipientID string) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := recipientFilter(recipientID)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	unread, err := s.UnreadCount(ctx, recipientID)
	if err != nil {
		return res, err
	}

	notifications, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(notifications, unread, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) UnreadCount(ctx context.Context, recipientID string) (count int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnreadCount")
	defer scope.End()
	defer scope.TraceIfError(err)

	count, err = s.repo.Count(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRecipientID,
				Value:    recipientID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRead,
				Value:    false,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to count unread notifications")

		return count, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

func (s *serviceImpl) MarkRead(ctx context.Context, id, recipientID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == constant.Empty || notification.RecipientID != recipientID {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	updated := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: recipientID,
	}

	if err = s.repo.Update(ctx, updated, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark notification read")

		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

func (s *serviceImpl) MarkAllRead(ctx context.Context, recipientID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAllRead")
	defer scope.End()
	defer scope.TraceIfError(err)

	updated := map[string]any{
		model.FieldRead:          true,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: recipientID,
	}

	if err = s.repo.Update(ctx, updated, recipientFilter(recipientID)); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications read")

		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

func recipientFilter(recipientID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRecipientID,
				Value:    recipientID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
