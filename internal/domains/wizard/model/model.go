package model

import (
	"encoding/json"
	"time"

	"medistay/shared/failure"
)

const (
	EntityName = "wizard"

	// SchemaVersion is baked into every draft key so a schema change never
	// resurrects an incompatible draft.
	SchemaVersion = "v1"
)

const (
	KindPropertyOnboarding   = "property_onboarding"
	KindProviderRegistration = "provider_registration"
)

const (
	StepBase      = "base"
	StepAmenities = "amenities"
	StepRooms     = "rooms"

	StepDetails      = "details"
	StepTerms        = "terms"
	StepVerification = "verification"
)

var sequences = map[string][]string{
	KindPropertyOnboarding:   {StepBase, StepAmenities, StepRooms},
	KindProviderRegistration: {StepDetails, StepTerms, StepVerification},
}

func Steps(kind string) ([]string, error) {
	steps, ok := sequences[kind]
	if !ok {
		return nil, failure.BadRequestFromString("unknown wizard kind") // nolint:wrapcheck
	}

	return steps, nil
}

// Draft accumulates one validated payload per submitted step. StepIndex points
// at the step the caller must submit next; Back moves it without touching the
// payloads, so nothing is lost when the caller revisits an earlier step.
type Draft struct {
	ID         string                     `json:"id"`
	Kind       string                     `json:"kind"`
	OwnerID    string                     `json:"owner_id"`
	StepIndex  int                        `json:"step_index"`
	Payloads   map[string]json.RawMessage `json:"payloads"`
	Revision   int                        `json:"revision"`
	CreatedAt  time.Time                  `json:"created_at"`
	ModifiedAt time.Time                  `json:"modified_at"`
}

func (d *Draft) CurrentStep() string {
	steps, err := Steps(d.Kind)
	if err != nil || d.StepIndex >= len(steps) {
		return ""
	}

	return steps[d.StepIndex]
}

// Submitted reports whether every step before the given index has a payload.
func (d *Draft) Submitted(step string) bool {
	_, ok := d.Payloads[step]

	return ok
}

func (d *Draft) OnFinalStep() bool {
	steps, err := Steps(d.Kind)
	if err != nil {
		return false
	}

	return d.StepIndex == len(steps)-1
}
