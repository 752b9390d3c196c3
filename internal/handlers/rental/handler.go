package rental

import (
	"net/http"

	"drivio/infras/otel"
	"drivio/internal/domains/rental/model"
	"drivio/internal/domains/rental/model/dto"
	"drivio/internal/domains/rental/service"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	"drivio/shared/failure"
	"drivio/shared/validator"
	"drivio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Rental
	otel    otel.Otel
}

func New(service service.Rental, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rentals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRental)
		routerGroup.Get("/", handler.GetRentals)
		routerGroup.Get("/myrentals", handler.GetMyRentals)
		routerGroup.Get("/{id}", handler.GetRentalByID)
		routerGroup.Get("/{id}/progress", handler.GetRentalProgress)
		routerGroup.Patch("/{id}", handler.ModifyRental)
		routerGroup.Post("/{id}/cancel", handler.CancelRental)
		routerGroup.Post("/{id}/decision", handler.DecideRental)
		routerGroup.Post("/{id}/payment", handler.MarkPayment)
	})
}

// CreateRental handles the creation of a new rental reservation.
// @Summary Create a new rental
// @Description Reserve a car for a date range. The reservation starts in pending_approval and is priced server-side.
// @Tags Rental
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalRequest true "Create Rental Request"
// @Success 201 {object} response.Data[dto.RentalDetailResponse] "Rental created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [post]
// @Security BearerAuth
func (handler *Handler) CreateRental(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRental")
	defer scope.End()

	req := dto.CreateRentalRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	rental, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rental")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, rental)
}

// GetRentals retrieves all rentals based on query parameters.
// @Summary Get all rentals
// @Description Retrieve all rentals with optional filtering and pagination.
// @Tags Rental
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param car_id query string false "Filter by car ID"
// @Param status query string false "Filter by status (pending_approval, approved, rejected, active, completed, cancelled)"
// @Param payment_status query string false "Filter by payment status (pending, paid, refunded, failed)"
// @Success 200 {object} response.Data[dto.GetRentalsResponse] "List of rentals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals [get]
// @Security BearerAuth
func (handler *Handler) GetRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentals")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilter(r, nil)

	rentals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rentals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rentals retrieved successfully")

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetMyRentals retrieves the authenticated customer's rentals.
// @Summary Get my rentals
// @Description Retrieve the rentals belonging to the authenticated customer with optional filtering and pagination.
// @Tags Rental
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param payment_status query string false "Filter by payment status"
// @Success 200 {object} response.Data[dto.GetRentalsResponse] "List of the customer's rentals"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/myrentals [get]
// @Security BearerAuth
func (handler *Handler) GetMyRentals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyRentals")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := listFilter(r, &gDto.Filter{
		Field:    model.FieldCustomerID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	rentals, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user rentals")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User rentals retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, rentals)
}

// GetRentalByID retrieves a rental with its derived permissions and progress.
// @Summary Get a rental by ID
// @Description Retrieve a rental, its car snapshot, the action permissions, and the live progress snapshot.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Data[dto.RentalDetailResponse] "Rental details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRentalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rental, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rental retrieved successfully")

	response.WithJSON(w, http.StatusOK, rental)
}

// GetRentalProgress returns the live temporal progress of a rental.
// @Summary Get rental progress
// @Description Retrieve the elapsed percentage, remaining time, and severity band for an in-flight rental. Terminal rentals carry no progress.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Success 200 {object} response.Data[dto.ProgressResponse] "Rental progress"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/progress [get]
// @Security BearerAuth
func (handler *Handler) GetRentalProgress(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalProgress")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	progress, err := handler.service.Progress(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental progress")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rental progress retrieved successfully")

	response.WithJSON(w, http.StatusOK, progress)
}

// ModifyRental replaces the mutable details of a rental.
// @Summary Modify a rental
// @Description Replace the rental's dates, locations, and add-ons. All date fields are validated before anything is persisted; the total is recomputed server-side.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.ModifyRentalRequest true "Modify Rental Request"
// @Success 200 {object} response.Data[dto.RentalDetailResponse] "Rental modified successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id} [patch]
// @Security BearerAuth
func (handler *Handler) ModifyRental(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ModifyRental")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.ModifyRentalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rental, err := handler.service.Modify(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to modify rental")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental modified successfully by user " + user)

	response.WithJSON(w, http.StatusOK, rental)
}

// CancelRental cancels a rental after explicit confirmation.
// @Summary Cancel a rental
// @Description Cancel a rental. The request body must carry confirm=true; terminal rentals are refused.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.CancelRentalRequest true "Cancel Rental Request"
// @Success 200 {object} response.Data[dto.RentalDetailResponse] "Rental cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelRental(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRental")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelRentalRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rental, err := handler.service.Cancel(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel rental")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental cancelled successfully by user " + user)

	response.WithJSON(w, http.StatusOK, rental)
}

// DecideRental records the owner's approval verdict on a pending rental.
// @Summary Approve or reject a rental
// @Description Record the verdict on a pending rental: approved, or rejected with a reason.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.DecisionRequest true "Decision Request"
// @Success 200 {object} response.Data[dto.RentalDetailResponse] "Decision recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/decision [post]
// @Security BearerAuth
func (handler *Handler) DecideRental(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideRental")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.DecisionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rental, err := handler.service.Decide(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decide rental")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental decision recorded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, rental)
}

// MarkPayment updates the rental's payment status.
// @Summary Update payment status
// @Description Update the payment dimension of a rental without touching its lifecycle status.
// @Tags Rental
// @Accept json
// @Produce json
// @Param id path string true "Rental ID"
// @Param request body dto.PaymentRequest true "Payment Request"
// @Success 200 {object} response.Data[dto.RentalDetailResponse] "Payment status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rentals/{id}/payment [post]
// @Security BearerAuth
func (handler *Handler) MarkPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkPayment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rental, err := handler.service.MarkPayment(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Rental payment status updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, rental)
}

// listFilter builds the AND filter group shared by the listing endpoints
// from the optional query parameters.
func listFilter(r *http.Request, base *gDto.Filter) gDto.FilterGroup {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if base != nil {
		filterGroup.Filters = append(filterGroup.Filters, *base)
	}

	if carID := r.URL.Query().Get(model.FieldCarID); carID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCarID,
			Operator: gDto.FilterOperatorEq,
			Value:    carID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if paymentStatus := r.URL.Query().Get(model.FieldPaymentStatus); paymentStatus != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPaymentStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    paymentStatus,
			Table:    model.TableName,
		})
	}

	return filterGroup
}
