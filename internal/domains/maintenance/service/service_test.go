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
	carMocks "drivio/internal/domains/car/mocks"
	maintenanceMocks "drivio/internal/domains/maintenance/mocks"
	"drivio/internal/domains/maintenance/model"
	"drivio/internal/domains/maintenance/model/dto"
	"drivio/internal/domains/maintenance/service"
	cacheMocks "drivio/shared/cache/mocks"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	"drivio/shared/failure"
	"drivio/shared/timezone"
)

type bundle struct {
	repo    *maintenanceMocks.MockMaintenance
	carRepo *carMocks.MockCar
	cache   *cacheMocks.MockRedisCache
}

func newService(ctrl *gomock.Controller) (service.Maintenance, bundle) {
	b := bundle{
		repo:    maintenanceMocks.NewMockMaintenance(ctrl),
		carRepo: carMocks.NewMockCar(ctrl),
		cache:   cacheMocks.NewMockRedisCache(ctrl),
	}

	svc := service.New(b.repo, b.carRepo, &config.Config{}, b.cache, mocks.NewOtel())

	return svc, b
}

func allowAsync(b bundle) {
	b.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError).AnyTimes()
	b.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	b.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	b.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func record(status model.Status) model.Record {
	return model.Record{
		ID:            "record-1",
		CarID:         "car-1",
		Description:   "oil change",
		Type:          model.TypeRoutine,
		Priority:      model.PriorityMedium,
		Status:        status,
		ScheduledDate: timezone.Now().AddDate(0, 0, 3),
	}
}

func TestMaintenanceService_Transition(t *testing.T) {
	t.Run("illegal transition is refused", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(record(model.StatusScheduled), nil)

		_, err := svc.Transition(context.Background(), dto.TransitionRequest{Status: "completed"}, "record-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("terminal record is frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(record(model.StatusCompleted), nil)

		_, err := svc.Transition(context.Background(), dto.TransitionRequest{Status: "in_progress"}, "record-1")

		assert.Error(t, err)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("completion stamps the completed date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		b.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(record(model.StatusInProgress), nil)

		var updated map[string]any

		b.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
				updated = req

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")
		res, err := svc.Transition(ctx, dto.TransitionRequest{Status: "completed"}, "record-1")

		assert.NoError(t, err)
		assert.Equal(t, model.StatusCompleted, updated[model.FieldStatus])
		assert.Contains(t, updated, model.FieldCompletedDate)
		assert.Equal(t, string(model.StatusCompleted), res.Status)
		assert.NotEmpty(t, res.CompletedDate)

		time.Sleep(10 * time.Millisecond)
	})
}

func TestMaintenanceService_EscalateOverdue(t *testing.T) {
	t.Run("overdue scheduled record is escalated to urgent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)
		allowAsync(b)

		overdue := record(model.StatusScheduled)
		overdue.ScheduledDate = timezone.Now().AddDate(0, 0, -2)

		b.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Record{overdue}, nil)

		var captured map[string]any

		b.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req map[string]any, _ gDto.FilterGroup) error {
				captured = req

				return nil
			})

		count, err := svc.EscalateOverdue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, model.PriorityUrgent, captured[model.FieldPriority])
		assert.Equal(t, constant.SystemUser, captured[constant.FieldModifiedBy])

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("nothing overdue leaves the records alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, b := newService(ctrl)

		b.repo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Record{}, nil)

		count, err := svc.EscalateOverdue(context.Background())

		assert.NoError(t, err)
		assert.Zero(t, count)
	})
}
