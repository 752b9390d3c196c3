package di

import (
	rentalEvents "drivio/internal/events/rental"
	"drivio/internal/scheduler"
	"drivio/transport/http"
)

// App bundles the long-running components of the service. main starts the
// consumer and scheduler before handing control to the HTTP server.
type App struct {
	HTTP      *http.HTTP
	Scheduler *scheduler.Scheduler
	Consumer  *rentalEvents.Consumer
}
