package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"drivio/config"
	"drivio/infras/otel/mocks"
	notificationMocks "drivio/internal/domains/notification/mocks"
	"drivio/internal/domains/notification/model"
	"drivio/internal/domains/notification/service"
	rentalModel "drivio/internal/domains/rental/model"
	gDto "drivio/shared/dto"
	"drivio/shared/failure"
)

func newService(ctrl *gomock.Controller) (service.Notification, *notificationMocks.MockNotification) {
	mockRepo := notificationMocks.NewMockNotification(ctrl)
	svc := service.New(mockRepo, &config.Config{}, mocks.NewOtel())

	return svc, mockRepo
}

func statusEvent(status, previous rentalModel.Status, reason string) rentalModel.StatusEvent {
	return rentalModel.StatusEvent{
		RentalID:       "rental-1",
		CustomerID:     "customer-1",
		CarID:          "car-1",
		Status:         status,
		PreviousStatus: previous,
		Reason:         reason,
	}
}

func TestNotificationService_CreateFromEvent(t *testing.T) {
	tests := []struct {
		name         string
		event        rentalModel.StatusEvent
		wantKind     model.Kind
		wantInBody   string
		wantDropped  bool
	}{
		{
			name:     "approval",
			event:    statusEvent(rentalModel.StatusApproved, rentalModel.StatusPendingApproval, ""),
			wantKind: model.KindRentalApproved,
		},
		{
			name:       "rejection carries the reason",
			event:      statusEvent(rentalModel.StatusRejected, rentalModel.StatusPendingApproval, "car already booked"),
			wantKind:   model.KindRentalRejected,
			wantInBody: "car already booked",
		},
		{
			name:     "activation",
			event:    statusEvent(rentalModel.StatusActive, rentalModel.StatusApproved, ""),
			wantKind: model.KindRentalActive,
		},
		{
			name:     "completion",
			event:    statusEvent(rentalModel.StatusCompleted, rentalModel.StatusActive, ""),
			wantKind: model.KindRentalCompleted,
		},
		{
			name:     "cancellation",
			event:    statusEvent(rentalModel.StatusCancelled, rentalModel.StatusApproved, ""),
			wantKind: model.KindRentalCancelled,
		},
		{
			name:     "in-place edit keeps the status and maps to modified",
			event:    statusEvent(rentalModel.StatusApproved, rentalModel.StatusApproved, "rental details modified"),
			wantKind: model.KindRentalModified,
		},
		{
			name:        "creation event has no mapping",
			event:       statusEvent(rentalModel.StatusPendingApproval, "", ""),
			wantDropped: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo := newService(ctrl)

			var inserted model.Notification

			if !tt.wantDropped {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, notification model.Notification) error {
						inserted = notification

						return nil
					})
			}

			err := svc.CreateFromEvent(context.Background(), tt.event)
			assert.NoError(t, err)

			if tt.wantDropped {
				return
			}

			assert.Equal(t, tt.wantKind, inserted.Kind)
			assert.Equal(t, "customer-1", inserted.RecipientID)
			assert.Equal(t, "rental-1", inserted.RentalID)
			assert.NotEmpty(t, inserted.Title)
			assert.False(t, inserted.Read)

			if tt.wantInBody != "" {
				assert.Contains(t, inserted.Body, tt.wantInBody)
			}
		})
	}
}

func TestNotificationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newService(ctrl)

	notifications := []model.Notification{
		{ID: "n-1", RecipientID: "customer-1", Kind: model.KindRentalApproved, Read: true},
		{ID: "n-2", RecipientID: "customer-1", Kind: model.KindRentalActive},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	// Unread count uses a narrower filter.
	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(notifications, nil)

	res, err := svc.List(context.Background(), gDto.QueryParams{Limit: 10}, "customer-1")

	assert.NoError(t, err)
	assert.Len(t, res.Notifications, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.UnreadCount)
}

func TestNotificationService_MarkRead(t *testing.T) {
	t.Run("recipient mismatch is reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo := newService(ctrl)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{ID: "n-1", RecipientID: "someone-else"}, nil)

		err := svc.MarkRead(context.Background(), "n-1", "customer-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("own notification is marked read", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, mockRepo := newService(ctrl)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Notification{ID: "n-1", RecipientID: "customer-1"}, nil)

		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, true, req[model.FieldRead])

				return nil
			})

		err := svc.MarkRead(context.Background(), "n-1", "customer-1")

		assert.NoError(t, err)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newService(ctrl)

	mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	assert.NoError(t, svc.MarkAllRead(context.Background(), "customer-1"))
}
