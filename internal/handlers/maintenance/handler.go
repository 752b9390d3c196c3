package maintenance

import (
	"net/http"

	"drivio/infras/otel"
	"drivio/internal/domains/maintenance/model"
	"drivio/internal/domains/maintenance/model/dto"
	"drivio/internal/domains/maintenance/service"
	"drivio/shared/constant"
	gDto "drivio/shared/dto"
	"drivio/shared/validator"
	"drivio/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Maintenance
	otel    otel.Otel
}

func New(service service.Maintenance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRecord)
		routerGroup.Get("/", handler.GetRecords)
		routerGroup.Get("/{id}", handler.GetRecordByID)
		routerGroup.Patch("/{id}", handler.UpdateRecord)
		routerGroup.Post("/{id}/transition", handler.TransitionRecord)
		routerGroup.Delete("/{id}", handler.DeleteRecord)
	})
}

// CreateRecord schedules a new maintenance job for a car.
// @Summary Create a maintenance record
// @Description Schedule a maintenance job for a car.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateMaintenanceRequest true "Create Maintenance Request"
// @Success 201 {object} response.Data[dto.MaintenanceResponse] "Maintenance record created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [post]
// @Security BearerAuth
func (handler *Handler) CreateRecord(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRecord")
	defer scope.End()

	req := dto.CreateMaintenanceRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	record, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance record")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record created successfully by user " + user)

	response.WithJSON(writer, http.StatusCreated, record)
}

// GetRecords retrieves maintenance records.
// @Summary Get maintenance records
// @Description Retrieve maintenance records with optional filtering and pagination.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param car_id query string false "Filter by car ID"
// @Param status query string false "Filter by status (scheduled, in_progress, completed, cancelled)"
// @Param priority query string false "Filter by priority (low, medium, high, urgent)"
// @Success 200 {object} response.Data[dto.GetMaintenanceResponse] "List of maintenance records"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance [get]
// @Security BearerAuth
func (handler *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecords")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
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

	if priority := r.URL.Query().Get(model.FieldPriority); priority != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldPriority,
			Operator: gDto.FilterOperatorEq,
			Value:    priority,
			Table:    model.TableName,
		})
	}

	records, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance records")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance records retrieved successfully")

	response.WithJSON(w, http.StatusOK, records)
}

// GetRecordByID retrieves a maintenance record by its ID.
// @Summary Get a maintenance record by ID
// @Description Retrieve a maintenance record by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance Record ID"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance record details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRecordByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecordByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance record by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance record retrieved successfully")

	response.WithJSON(w, http.StatusOK, record)
}

// UpdateRecord updates an existing maintenance record.
// @Summary Update a maintenance record by ID
// @Description Update the details of a maintenance record that is not yet terminal.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance Record ID"
// @Param request body dto.UpdateMaintenanceRequest true "Update Maintenance Request"
// @Success 200 {object} response.Message "Maintenance record updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRecord")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMaintenanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Maintenance record updated successfully")
}

// TransitionRecord moves a maintenance record along its lifecycle.
// @Summary Transition a maintenance record
// @Description Move a maintenance record to its next lifecycle state. Illegal moves are refused.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance Record ID"
// @Param request body dto.TransitionRequest true "Transition Request"
// @Success 200 {object} response.Data[dto.MaintenanceResponse] "Maintenance record transitioned successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id}/transition [post]
// @Security BearerAuth
func (handler *Handler) TransitionRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TransitionRecord")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.TransitionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	record, err := handler.service.Transition(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to transition maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record transitioned successfully by user " + user)

	response.WithJSON(w, http.StatusOK, record)
}

// DeleteRecord deletes a maintenance record by its ID.
// @Summary Delete a maintenance record by ID
// @Description Delete a maintenance record using its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Maintenance Record ID"
// @Success 200 {object} response.Message "Maintenance record deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRecord")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete maintenance record")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance record deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Maintenance record deleted successfully")
}
