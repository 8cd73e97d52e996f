package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"rentora/internal/models/response_models"
	"rentora/internal/wizard"
	mem "rentora/pkg/memcache"
	"rentora/pkg/metrics"
	"rentora/pkg/utils"
)

// StepValidationError lists the fields that keep the current step from
// moving forward.
type StepValidationError struct {
	Step   wizard.Step
	Fields []response_models.FieldError
}

func (e *StepValidationError) Error() string {
	return fmt.Sprintf("step %s has %d invalid field(s)", e.Step, len(e.Fields))
}

func (e *StepValidationError) Unwrap() error { return utils.ErrWizardStepInvalid }

type WizardServiceInterface interface {
	Open(ctx context.Context, userID uuid.UUID) (response_models.WizardState, error)
	State(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardState, error)
	SetFields(ctx context.Context, sessionID string, userID uuid.UUID, fields map[string]json.RawMessage) (response_models.WizardState, error)
	// Primary is the Next/Create button.
	Primary(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardAction, error)
	// Secondary is the Back button.
	Secondary(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardAction, error)
	Cancel(ctx context.Context, sessionID string, userID uuid.UUID) error
}

// WizardSession is one open wizard. step serializes the actions that move
// between steps so a step is validated and left in one go.
type WizardSession struct {
	owner uuid.UUID
	ctrl  *wizard.Controller
	step  sync.Mutex
}

type WizardService struct {
	sessions   mem.SessionStore[*WizardSession]
	listings   ListingServiceInterface
	categories CategoryServiceInterface
	validate   *validator.Validate
	log        *zap.Logger
}

func NewWizardService(
	sessions mem.SessionStore[*WizardSession],
	listings ListingServiceInterface,
	categories CategoryServiceInterface,
	log *zap.Logger,
) WizardServiceInterface {
	return &WizardService{
		sessions:   sessions,
		listings:   listings,
		categories: categories,
		validate:   validator.New(),
		log:        log,
	}
}

// NewWizardSessions is the session store the fx graph hands to the service.
func NewWizardSessions(ttl time.Duration) mem.SessionStore[*WizardSession] {
	return mem.NewSessions[*WizardSession](ttl)
}

func (w *WizardService) Open(ctx context.Context, userID uuid.UUID) (response_models.WizardState, error) {
	id := uuid.NewString()
	log := w.log.With(zap.String("wizard_id", id), zap.String("user_id", userID.String()))

	ctrl := wizard.NewController(
		w.listings.CreatorFor(userID),
		wizard.WithOnCreated(func(listingID string) {
			log.Info("wizard created listing", zap.String("listing_id", listingID))
		}),
		wizard.WithOnFailed(func(err error) {
			log.Warn("wizard submission failed", zap.Error(err))
		}),
	)
	w.sessions.Set(id, &WizardSession{owner: userID, ctrl: ctrl})
	metrics.SetWizardSessions(w.sessions.Len())

	log.Debug("wizard opened")
	return toWizardState(id, ctrl.Snapshot()), nil
}

func (w *WizardService) State(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardState, error) {
	s, err := w.session(sessionID, userID)
	if err != nil {
		return response_models.WizardState{}, err
	}
	return toWizardState(sessionID, s.ctrl.Snapshot()), nil
}

// SetFields decodes every value before writing any, so a bad field leaves
// the draft untouched.
func (w *WizardService) SetFields(ctx context.Context, sessionID string, userID uuid.UUID, fields map[string]json.RawMessage) (response_models.WizardState, error) {
	s, err := w.session(sessionID, userID)
	if err != nil {
		return response_models.WizardState{}, err
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	decoded := make(map[string]any, len(fields))
	var invalid []response_models.FieldError
	for _, name := range names {
		v, err := wizard.DecodeField(name, fields[name])
		if err != nil {
			rule := "type"
			if errors.Is(err, wizard.ErrUnknownField) {
				rule = "unknown"
			}
			invalid = append(invalid, response_models.FieldError{Field: name, Rule: rule})
			continue
		}
		decoded[name] = v
	}
	if len(invalid) > 0 {
		return response_models.WizardState{}, &StepValidationError{Step: s.ctrl.Step(), Fields: invalid}
	}

	for _, name := range names {
		if err := s.ctrl.SetField(name, decoded[name]); err != nil {
			return response_models.WizardState{}, &StepValidationError{
				Step:   s.ctrl.Step(),
				Fields: []response_models.FieldError{{Field: name, Rule: "type"}},
			}
		}
	}
	return toWizardState(sessionID, s.ctrl.Snapshot()), nil
}

func (w *WizardService) Primary(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardAction, error) {
	s, err := w.session(sessionID, userID)
	if err != nil {
		return response_models.WizardAction{}, err
	}

	if !s.step.TryLock() {
		metrics.RecordWizardOutcome(wizard.OutcomeIgnored.String())
		return response_models.WizardAction{}, utils.ErrWizardBusy
	}
	defer s.step.Unlock()

	snap := s.ctrl.Snapshot()
	if snap.Submitting {
		metrics.RecordWizardOutcome(wizard.OutcomeIgnored.String())
		return response_models.WizardAction{}, utils.ErrWizardBusy
	}
	if fieldErrs := w.validateStep(snap.Step, snap.Draft); len(fieldErrs) > 0 {
		return response_models.WizardAction{}, &StepValidationError{Step: snap.Step, Fields: fieldErrs}
	}

	// A listing being created is not abandoned when the client goes away.
	start := time.Now()
	res := s.ctrl.Submit(context.WithoutCancel(ctx))
	metrics.RecordWizardOutcome(res.Outcome.String())

	action := response_models.WizardAction{Outcome: res.Outcome.String(), ListingID: res.ListingID}
	switch res.Outcome {
	case wizard.OutcomeIgnored:
		return response_models.WizardAction{}, utils.ErrWizardBusy
	case wizard.OutcomeCreated:
		metrics.ObserveWizardCreate(time.Since(start).Seconds())
		action.Close = true
		action.State = toWizardState(sessionID, s.ctrl.Snapshot())
		w.sessions.Delete(sessionID)
		metrics.SetWizardSessions(w.sessions.Len())
		return action, nil
	case wizard.OutcomeFailed:
		metrics.ObserveWizardCreate(time.Since(start).Seconds())
		action.State = toWizardState(sessionID, s.ctrl.Snapshot())
		return action, fmt.Errorf("%w: %w", utils.ErrSubmissionFailed, res.Err)
	}

	action.State = toWizardState(sessionID, s.ctrl.Snapshot())
	return action, nil
}

func (w *WizardService) Secondary(ctx context.Context, sessionID string, userID uuid.UUID) (response_models.WizardAction, error) {
	s, err := w.session(sessionID, userID)
	if err != nil {
		return response_models.WizardAction{}, err
	}

	if !s.step.TryLock() {
		return response_models.WizardAction{}, utils.ErrWizardBusy
	}
	defer s.step.Unlock()

	outcome := "unavailable"
	if s.ctrl.Retreat() {
		outcome = "retreated"
	}
	return response_models.WizardAction{
		Outcome: outcome,
		State:   toWizardState(sessionID, s.ctrl.Snapshot()),
	}, nil
}

func (w *WizardService) Cancel(ctx context.Context, sessionID string, userID uuid.UUID) error {
	s, err := w.session(sessionID, userID)
	if err != nil {
		return err
	}
	if !s.step.TryLock() {
		return utils.ErrWizardBusy
	}
	defer s.step.Unlock()

	if !s.ctrl.Cancel() {
		return utils.ErrWizardBusy
	}
	w.sessions.Delete(sessionID)
	metrics.SetWizardSessions(w.sessions.Len())
	return nil
}

func (w *WizardService) session(sessionID string, userID uuid.UUID) (*WizardSession, error) {
	s, ok := w.sessions.Get(sessionID)
	if !ok || s.owner != userID {
		return nil, utils.ErrWizardNotFound
	}
	return s, nil
}

var fieldRules = map[string]string{
	wizard.FieldGuestCount:    "gte=1,lte=100",
	wizard.FieldRoomCount:     "gte=1,lte=100",
	wizard.FieldBathroomCount: "gte=1,lte=100",
	wizard.FieldImageSrc:      "required",
	wizard.FieldTitle:         "required,max=120",
	wizard.FieldDescription:   "required,max=4000",
	wizard.FieldPrice:         "gte=1,lte=1000000",
}

// validateStep checks only the fields the current step edits.
func (w *WizardService) validateStep(step wizard.Step, d wizard.Draft) []response_models.FieldError {
	var out []response_models.FieldError
	for _, name := range wizard.Describe(step).Fields {
		switch name {
		case wizard.FieldCategory:
			if _, ok := w.categories.Find(d.Category); !ok {
				out = append(out, response_models.FieldError{Field: name, Rule: "category"})
			}
		case wizard.FieldLocation:
			if d.Location == nil || d.Location.Value == "" {
				out = append(out, response_models.FieldError{Field: name, Rule: "required"})
			}
		default:
			value, _ := d.Get(name)
			if err := w.validate.Var(value, fieldRules[name]); err != nil {
				var verrs validator.ValidationErrors
				rule := "invalid"
				if errors.As(err, &verrs) && len(verrs) > 0 {
					rule = verrs[0].Tag()
				}
				out = append(out, response_models.FieldError{Field: name, Rule: rule})
			}
		}
	}
	return out
}

func toWizardState(id string, snap wizard.Snapshot) response_models.WizardState {
	return response_models.WizardState{
		SessionID:      id,
		Step:           snap.Step.String(),
		StepIndex:      int(snap.Step),
		StepCount:      len(wizard.Steps()),
		Draft:          snap.Draft,
		Submitting:     snap.Submitting,
		PrimaryLabel:   snap.PrimaryLabel,
		SecondaryLabel: snap.SecondaryLabel,
		Body:           wizard.Describe(snap.Step),
	}
}
