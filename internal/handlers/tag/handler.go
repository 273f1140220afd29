package tag

import (
	"net/http"

	"medistay/infras/otel"
	"medistay/internal/domains/tag/model"
	"medistay/internal/domains/tag/model/dto"
	"medistay/internal/domains/tag/service"
	"medistay/shared"
	"medistay/shared/constant"
	gDto "medistay/shared/dto"
	"medistay/shared/validator"
	"medistay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Tag
	otel    otel.Otel
}

func New(service service.Tag, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tags", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTag)
		routerGroup.Get("/", handler.GetTags)
		routerGroup.Get("/{id}", handler.GetTagByID)
		routerGroup.Patch("/{id}", handler.UpdateTag)
		routerGroup.Delete("/{id}", handler.DeleteTag)
	})
}

// CreateTag handles the creation of a new amenity/service tag.
// @Summary Create a new tag
// @Description Create a new amenity or service tag for the catalog.
// @Tags Tag
// @Accept json
// @Produce json
// @Param request body dto.CreateTagRequest true "Tag payload"
// @Success 201 {object} response.Message "Tag created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tags [post]
// @Security BearerAuth
func (handler *Handler) CreateTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTag")
	defer scope.End()

	var req dto.CreateTagRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tag")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tag created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tag created successfully")
}

// GetTags retrieves the tag catalog filtered by applicability.
// @Summary Get all tags
// @Description Retrieve the tag catalog with optional applicability and kind filters.
// @Tags Tag
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param kind query string false "Filter by kind (extra|service)"
// @Param applies_to_property query boolean false "Only tags applicable to properties"
// @Param applies_to_service query boolean false "Only tags applicable to services"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetTagsResponse] "Tag catalog"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tags [get]
func (handler *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTags")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldKind,
				Operator: gDto.FilterOperatorEq,
				Value:    r.URL.Query().Get(model.FieldKind),
				Table:    model.TableName,
			},
		},
	}

	if applies := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAppliesToProperty)); applies != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAppliesToProperty,
			Operator: gDto.FilterOperatorEq,
			Value:    *applies,
			Table:    model.TableName,
		})
	}

	if applies := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldAppliesToService)); applies != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAppliesToService,
			Operator: gDto.FilterOperatorEq,
			Value:    *applies,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	tags, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tags")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tags retrieved successfully")

	response.WithJSON(w, http.StatusOK, tags)
}

// GetTagByID retrieves a tag by its ID.
// @Summary Get a tag by ID
// @Description Retrieve a tag by its unique identifier.
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} response.Data[dto.TagResponse] "Tag details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tags/{id} [get]
func (handler *Handler) GetTagByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTagByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	tag, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tag by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Tag retrieved successfully")

	response.WithJSON(w, http.StatusOK, tag)
}

// UpdateTag updates an existing tag by its ID.
// @Summary Update a tag by ID
// @Description Update the details of an existing tag.
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Param request body dto.UpdateTagRequest true "Tag payload"
// @Success 200 {object} response.Message "Tag updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tags/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTag")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateTagRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tag")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tag updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tag updated successfully")
}

// DeleteTag deletes a tag by its ID.
// @Summary Delete a tag by ID
// @Description Delete a tag using its unique identifier.
// @Tags Tag
// @Accept json
// @Produce json
// @Param id path string true "Tag ID"
// @Success 200 {object} response.Message "Tag deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tags/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTag")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tag")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tag deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tag deleted successfully")
}
