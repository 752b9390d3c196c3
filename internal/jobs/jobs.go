package jobs

import (
	"context"

	"drivio/infras/otel"
	maintenanceService "drivio/internal/domains/maintenance/service"
	rentalService "drivio/internal/domains/rental/service"
	"drivio/shared/constant"

	"github.com/rs/zerolog/log"
)

// Runner holds the dependencies the background jobs execute against.
type Runner struct {
	rental      rentalService.Rental
	maintenance maintenanceService.Maintenance
	otel        otel.Otel
}

func NewRunner(rental rentalService.Rental, maintenance maintenanceService.Maintenance, otel otel.Otel) *Runner {
	return &Runner{
		rental:      rental,
		maintenance: maintenance,
		otel:        otel,
	}
}

// LifecycleSweep advances rentals whose dates have caught up with the clock:
// approved rentals whose start date arrived become active, and active
// rentals whose final day has fully elapsed become completed.
func (r *Runner) LifecycleSweep() {
	r.run("LifecycleSweep", func(ctx context.Context) {
		activated, err := r.rental.ActivateDue(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to activate due rentals")
		}

		completed, err := r.rental.CompleteDue(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to complete due rentals")
		}

		if activated > 0 || completed > 0 {
			log.Info().Int("activated", activated).Int("completed", completed).Msg("lifecycle sweep done")
		}
	})
}

// MaintenanceSweep escalates scheduled maintenance work whose scheduled date
// has passed without being started.
func (r *Runner) MaintenanceSweep() {
	r.run("MaintenanceSweep", func(ctx context.Context) {
		escalated, err := r.maintenance.EscalateOverdue(ctx)
		if err != nil {
			log.Error().Err(err).Msg("failed to escalate overdue maintenance records")
		}

		if escalated > 0 {
			log.Info().Int("escalated", escalated).Msg("maintenance sweep done")
		}
	})
}

func (r *Runner) run(name string, fn func(ctx context.Context)) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Any("panic", rec).Str("job", name).Msg("job panicked")
		}
	}()

	ctx, scope := r.otel.NewScope(context.Background(), constant.OtelJobScopeName, constant.OtelJobScopeName+"."+name)
	defer scope.End()

	fn(ctx)
}
