package response_models

import "rentora/internal/wizard"

type WizardState struct {
	SessionID      string            `json:"sessionId"`
	Step           string            `json:"step"`
	StepIndex      int               `json:"stepIndex"`
	StepCount      int               `json:"stepCount"`
	Draft          wizard.Draft      `json:"draft"`
	Submitting     bool              `json:"isSubmitting"`
	PrimaryLabel   string            `json:"actionLabel"`
	SecondaryLabel string            `json:"secondaryActionLabel,omitempty"`
	Body           wizard.Descriptor `json:"body"`
}

// WizardAction reports what a primary or secondary action did.
type WizardAction struct {
	Outcome   string      `json:"outcome"`
	ListingID string      `json:"listingId,omitempty"`
	Close     bool        `json:"close"`
	State     WizardState `json:"state"`
}

type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

type RentModal struct {
	Modal  string       `json:"modal"`
	Wizard *WizardState `json:"wizard,omitempty"`
}
