package wizard

import (
	"net/http"

	"medistay/infras/otel"
	"medistay/internal/domains/wizard/model/dto"
	"medistay/internal/domains/wizard/service"
	"medistay/shared/constant"
	"medistay/shared/validator"
	"medistay/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Wizard
	otel    otel.Otel
}

func New(service service.Wizard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/wizards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.StartWizard)
		routerGroup.Get("/{id}", handler.GetDraft)
		routerGroup.Post("/{id}/steps/{step}", handler.SubmitStep)
		routerGroup.Post("/{id}/back", handler.Back)
		routerGroup.Delete("/{id}", handler.AbandonWizard)
	})
}

// StartWizard opens a new draft for a step sequence.
// @Summary Start a wizard
// @Description Open a server-side draft for property onboarding or provider registration.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param request body dto.StartWizardRequest true "Wizard kind"
// @Success 201 {object} response.Data[dto.DraftResponse] "Draft created"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/wizards [post]
// @Security BearerAuth
func (handler *Handler) StartWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartWizard")
	defer scope.End()

	var req dto.StartWizardRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.Start(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start wizard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard started successfully")

	response.WithJSON(w, http.StatusCreated, draft)
}

// GetDraft returns the current state of a draft.
// @Summary Get a wizard draft
// @Description Retrieve the draft, its submitted steps and the step to submit next.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse] "Draft state"
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDraft(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get wizard draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard draft retrieved successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// SubmitStep validates and merges one step payload; the final step completes
// the wizard.
// @Summary Submit a wizard step
// @Description Validate the payload against the step schema; on the final step the combined draft is handed to the domain services.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param step path string true "Step name"
// @Param request body dto.SubmitStepRequest true "Step payload"
// @Success 200 {object} response.Data[dto.CompleteWizardResponse] "Draft advanced or completed"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/steps/{step} [post]
// @Security BearerAuth
func (handler *Handler) SubmitStep(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitStep")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	step := chi.URLParam(r, "step")

	var req dto.SubmitStepRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.Submit(ctx, id, step, req.Payload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit wizard step")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard step submitted successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// Back moves a draft to its previous step without discarding data.
// @Summary Step back in a wizard
// @Description Move to the previous step; submitted payloads are kept.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Data[dto.DraftResponse] "Draft state"
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id}/back [post]
// @Security BearerAuth
func (handler *Handler) Back(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Back")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	draft, err := handler.service.Back(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to step back in wizard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard stepped back successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// AbandonWizard discards a draft.
// @Summary Abandon a wizard
// @Description Discard a draft and everything submitted into it.
// @Tags Wizard
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} response.Message "Draft discarded"
// @Failure 404 {object} response.Error
// @Router /v1/wizards/{id} [delete]
// @Security BearerAuth
func (handler *Handler) AbandonWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AbandonWizard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Abandon(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to abandon wizard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Wizard abandoned successfully")

	response.WithMessage(w, http.StatusOK, "Draft discarded")
}
