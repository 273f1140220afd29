package dto

import (
	"bytes"
	"encoding/json"

	"medistay/internal/domains/wizard/model"
	"medistay/shared/failure"
	"medistay/shared/validator"
)

type StartWizardRequest struct {
	Kind string `json:"kind" validate:"required,oneof=property_onboarding provider_registration"`
}

type SubmitStepRequest struct {
	Payload json.RawMessage `json:"payload" validate:"required"`
}

// Step schemas. A payload only enters the draft after it validates against the
// schema of its step.

type PropertyBaseStep struct {
	Name        string   `json:"name"        validate:"required,max=200"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	Address     string   `json:"address"     validate:"omitempty,max=500"`
	City        string   `json:"city"        validate:"required,max=100"`
	State       string   `json:"state"       validate:"omitempty,max=100"`
	Country     string   `json:"country"     validate:"required,max=100"`
	Photos      []string `json:"photos"      validate:"omitempty,dive,max=100"`
}

type PropertyAmenitiesStep struct {
	ExtraTags   []string `json:"extra_tags"   validate:"omitempty,dive,max=100"`
	ServiceTags []string `json:"service_tags" validate:"omitempty,dive,max=100"`
}

type RoomDraft struct {
	Name          string   `json:"name"            validate:"required,max=200"`
	Description   string   `json:"description"     validate:"omitempty,max=5000"`
	PricePerNight string   `json:"price_per_night" validate:"omitempty,max=20"`
	CleaningFee   string   `json:"cleaning_fee"    validate:"omitempty,max=20"`
	MaxGuests     int      `json:"max_guests"      validate:"omitempty,min=1,max=20"`
	ExtraTags     []string `json:"extra_tags"      validate:"omitempty,dive,max=100"`
	ServiceTags   []string `json:"service_tags"    validate:"omitempty,dive,max=100"`
	Photos        []string `json:"photos"          validate:"omitempty,dive,max=100"`
}

type PropertyRoomsStep struct {
	Rooms []RoomDraft `json:"rooms" validate:"required,min=1,dive"`
}

type ProviderDetailsStep struct {
	FullName   string `json:"full_name"  validate:"required,max=200"`
	Phone      string `json:"phone"      validate:"required,max=30"`
	Speciality string `json:"speciality" validate:"omitempty,max=200"`
}

type ProviderTermsStep struct {
	Accepted bool `json:"accepted" validate:"eq=true"`
}

type ProviderVerificationStep struct {
	DocumentType   string `json:"document_type"   validate:"required,oneof=passport national_id license"`
	DocumentNumber string `json:"document_number" validate:"required,max=50"`
	DocumentFileID string `json:"document_file_id" validate:"omitempty,uuid4"`
}

// ValidateStep decodes the payload against the schema of its step. The payload
// never reaches the draft when this returns an error.
func ValidateStep(kind, step string, payload json.RawMessage) error {
	switch {
	case kind == model.KindPropertyOnboarding && step == model.StepBase:
		return decodeStep(payload, &PropertyBaseStep{})
	case kind == model.KindPropertyOnboarding && step == model.StepAmenities:
		return decodeStep(payload, &PropertyAmenitiesStep{})
	case kind == model.KindPropertyOnboarding && step == model.StepRooms:
		return decodeStep(payload, &PropertyRoomsStep{})
	case kind == model.KindProviderRegistration && step == model.StepDetails:
		return decodeStep(payload, &ProviderDetailsStep{})
	case kind == model.KindProviderRegistration && step == model.StepTerms:
		return decodeStep(payload, &ProviderTermsStep{})
	case kind == model.KindProviderRegistration && step == model.StepVerification:
		return decodeStep(payload, &ProviderVerificationStep{})
	default:
		return failure.BadRequestFromString("unknown wizard step") // nolint:wrapcheck
	}
}

func decodeStep[T any](payload json.RawMessage, schema *T) error {
	return validator.Validate(bytes.NewReader(payload), schema) //nolint:wrapcheck
}

type DraftResponse struct {
	ID          string                     `json:"id"`
	Kind        string                     `json:"kind"`
	Steps       []string                   `json:"steps"`
	CurrentStep string                     `json:"current_step"`
	Submitted   []string                   `json:"submitted"`
	Payloads    map[string]json.RawMessage `json:"payloads"`
	Revision    int                        `json:"revision"`
	Completed   bool                       `json:"completed"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	steps, _ := model.Steps(draft.Kind)

	r.ID = draft.ID
	r.Kind = draft.Kind
	r.Steps = steps
	r.CurrentStep = draft.CurrentStep()
	r.Payloads = draft.Payloads
	r.Revision = draft.Revision

	r.Submitted = []string{}
	for _, step := range steps {
		if draft.Submitted(step) {
			r.Submitted = append(r.Submitted, step)
		}
	}
}

// CompleteWizardResponse reports what the terminal submit created.
type CompleteWizardResponse struct {
	DraftResponse
	PropertyID string   `json:"property_id,omitempty"`
	RoomIDs    []string `json:"room_ids,omitempty"`
}
