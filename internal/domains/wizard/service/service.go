package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"medistay/infras/otel"
	propertyDto "medistay/internal/domains/property/model/dto"
	roomDto "medistay/internal/domains/room/model/dto"
	"medistay/internal/domains/wizard/model"
	"medistay/internal/domains/wizard/model/dto"
	"medistay/internal/domains/wizard/repository"
	"medistay/shared/constant"
	"medistay/shared/failure"
	"medistay/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// PropertyCreator and RoomCreator are the slices of the property/room services
// the terminal submit needs.
type PropertyCreator interface {
	Create(ctx context.Context, req propertyDto.CreatePropertyRequest) (string, error)
}

type RoomCreator interface {
	Create(ctx context.Context, req roomDto.CreateRoomRequest) (string, error)
}

// ProviderRegistrar finishes a provider registration once all steps validate.
type ProviderRegistrar interface {
	PromoteToProvider(ctx context.Context, userID string) error
}

type Wizard interface {
	Start(ctx context.Context, req dto.StartWizardRequest) (dto.DraftResponse, error)
	Get(ctx context.Context, id string) (dto.DraftResponse, error)
	Submit(ctx context.Context, id, step string, payload json.RawMessage) (dto.CompleteWizardResponse, error)
	Back(ctx context.Context, id string) (dto.DraftResponse, error)
	Abandon(ctx context.Context, id string) error
}

type serviceImpl struct {
	store     repository.Store
	property  PropertyCreator
	room      RoomCreator
	registrar ProviderRegistrar
	otel      otel.Otel
}

func New(store repository.Store, property PropertyCreator, room RoomCreator, registrar ProviderRegistrar, otel otel.Otel) Wizard {
	return &serviceImpl{
		store:     store,
		property:  property,
		room:      room,
		registrar: registrar,
		otel:      otel,
	}
}

func (s *serviceImpl) Start(ctx context.Context, req dto.StartWizardRequest) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return res, failure.MissingCredential // nolint:wrapcheck
	}

	if _, err = model.Steps(req.Kind); err != nil {
		return res, err
	}

	draft := model.Draft{
		ID:         uuid.NewString(),
		Kind:       req.Kind,
		OwnerID:    user,
		StepIndex:  0,
		Payloads:   map[string]json.RawMessage{},
		Revision:   1,
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
	}

	if err = s.store.Save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

// Submit validates the payload against the step schema and merges it into the
// draft. The step must be the draft's current step: earlier steps are reachable
// through Back, later ones only after everything before them has submitted.
func (s *serviceImpl) Submit(ctx context.Context, id, step string, payload json.RawMessage) (res dto.CompleteWizardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if step != draft.CurrentStep() {
		return res, failure.BadRequestFromString("step submitted out of order") // nolint:wrapcheck
	}

	if err = dto.ValidateStep(draft.Kind, step, payload); err != nil {
		return res, err
	}

	draft.Payloads[step] = payload
	draft.Revision++
	draft.ModifiedAt = timezone.Now()

	if draft.OnFinalStep() {
		return s.complete(ctx, draft)
	}

	draft.StepIndex++

	if err = s.store.Save(ctx, draft); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.DraftResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	draft, err := s.loadOwned(ctx, id)
	if err != nil {
		return res, err
	}

	if draft.StepIndex > 0 {
		draft.StepIndex--
		draft.Revision++
		draft.ModifiedAt = timezone.Now()

		if err = s.store.Save(ctx, draft); err != nil {
			return res, err
		}
	}

	res.FromModel(draft)

	return res, nil
}

func (s *serviceImpl) Abandon(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Abandon")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.loadOwned(ctx, id); err != nil {
		return err
	}

	return s.store.Delete(ctx, id)
}

func (s *serviceImpl) loadOwned(ctx context.Context, id string) (model.Draft, error) {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		return model.Draft{}, failure.MissingCredential // nolint:wrapcheck
	}

	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return model.Draft{}, err
	}

	if draft.OwnerID != user {
		return model.Draft{}, failure.NotFound("draft not found") // nolint:wrapcheck
	}

	return draft, nil
}

// complete assembles the accumulated payloads and hands them to the domain
// services. The draft is only discarded after everything downstream succeeded.
func (s *serviceImpl) complete(ctx context.Context, draft model.Draft) (res dto.CompleteWizardResponse, err error) {
	switch draft.Kind {
	case model.KindPropertyOnboarding:
		res, err = s.completePropertyOnboarding(ctx, draft)
	case model.KindProviderRegistration:
		res, err = s.completeProviderRegistration(ctx, draft)
	default:
		return res, failure.BadRequestFromString("unknown wizard kind") // nolint:wrapcheck
	}

	if err != nil {
		return res, err
	}

	if err = s.store.Delete(ctx, draft.ID); err != nil {
		log.Error().Err(err).Str("draftID", draft.ID).Msg("failed to discard completed wizard draft")
	}

	res.Completed = true

	return res, nil
}

func (s *serviceImpl) completePropertyOnboarding(ctx context.Context, draft model.Draft) (res dto.CompleteWizardResponse, err error) {
	var base dto.PropertyBaseStep
	if err = json.Unmarshal(draft.Payloads[model.StepBase], &base); err != nil {
		return res, fmt.Errorf("failed to decode base step: %w", err)
	}

	var amenities dto.PropertyAmenitiesStep
	if err = json.Unmarshal(draft.Payloads[model.StepAmenities], &amenities); err != nil {
		return res, fmt.Errorf("failed to decode amenities step: %w", err)
	}

	var rooms dto.PropertyRoomsStep
	if err = json.Unmarshal(draft.Payloads[model.StepRooms], &rooms); err != nil {
		return res, fmt.Errorf("failed to decode rooms step: %w", err)
	}

	tags := append(append([]string{}, amenities.ExtraTags...), amenities.ServiceTags...)

	propertyID, err := s.property.Create(ctx, propertyDto.CreatePropertyRequest{
		Name:        base.Name,
		Description: base.Description,
		Address:     base.Address,
		City:        base.City,
		State:       base.State,
		Country:     base.Country,
		Tags:        tags,
		Photos:      base.Photos,
	})
	if err != nil {
		return res, err
	}

	roomIDs := make([]string, 0, len(rooms.Rooms))

	for _, room := range rooms.Rooms {
		roomID, err := s.room.Create(ctx, roomDto.CreateRoomRequest{
			PropertyID:    propertyID,
			Name:          room.Name,
			Description:   room.Description,
			PricePerNight: room.PricePerNight,
			CleaningFee:   room.CleaningFee,
			MaxGuests:     room.MaxGuests,
			ExtraTags:     room.ExtraTags,
			ServiceTags:   room.ServiceTags,
			Photos:        room.Photos,
		})
		if err != nil {
			return res, err
		}

		roomIDs = append(roomIDs, roomID)
	}

	res.FromModel(draft)
	res.PropertyID = propertyID
	res.RoomIDs = roomIDs

	return res, nil
}

func (s *serviceImpl) completeProviderRegistration(ctx context.Context, draft model.Draft) (res dto.CompleteWizardResponse, err error) {
	if err = s.registrar.PromoteToProvider(ctx, draft.OwnerID); err != nil {
		return res, err
	}

	res.FromModel(draft)

	return res, nil
}
