// Package wizard holds the state machine behind the "rent your home" flow:
// six fixed steps, a draft listing, and a single submit entry point that
// either moves forward or creates the listing on the last step.
package wizard

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrSubmissionFailed wraps whatever the Creator returned. The draft and step
// are left untouched so the caller can retry.
var ErrSubmissionFailed = errors.New("listing submission failed")

// Creator persists a finished draft and returns the new listing id.
type Creator interface {
	Create(ctx context.Context, draft Draft) (string, error)
}

type CreatorFunc func(ctx context.Context, draft Draft) (string, error)

func (f CreatorFunc) Create(ctx context.Context, draft Draft) (string, error) {
	return f(ctx, draft)
}

type Outcome int

const (
	// OutcomeIgnored means the call was dropped because a submission was in flight.
	OutcomeIgnored Outcome = iota
	OutcomeAdvanced
	OutcomeCreated
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdvanced:
		return "advanced"
	case OutcomeCreated:
		return "created"
	case OutcomeFailed:
		return "failed"
	}
	return "ignored"
}

type Result struct {
	Outcome   Outcome
	Step      Step
	ListingID string
	Err       error
}

// Snapshot is a consistent read of the controller plus the derived labels.
type Snapshot struct {
	Step           Step
	Draft          Draft
	Submitting     bool
	PrimaryLabel   string
	SecondaryLabel string
	HasSecondary   bool
}

type Option func(*Controller)

// WithOnCreated registers a callback fired once per successful creation.
func WithOnCreated(fn func(listingID string)) Option {
	return func(c *Controller) { c.onCreated = fn }
}

// WithOnFailed registers a callback fired once per failed creation.
func WithOnFailed(fn func(err error)) Option {
	return func(c *Controller) { c.onFailed = fn }
}

type Controller struct {
	mu         sync.Mutex
	step       Step
	draft      Draft
	submitting bool

	creator   Creator
	onCreated func(string)
	onFailed  func(error)
}

func NewController(creator Creator, opts ...Option) *Controller {
	c := &Controller{
		step:    FirstStep,
		draft:   NewDraft(),
		creator: creator,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Step() Step {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.step
}

func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Clone()
}

func (c *Controller) Submitting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.submitting
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	secondary, ok := SecondaryLabel(c.step)
	return Snapshot{
		Step:           c.step,
		Draft:          c.draft.Clone(),
		Submitting:     c.submitting,
		PrimaryLabel:   PrimaryLabel(c.step),
		SecondaryLabel: secondary,
		HasSecondary:   ok,
	}
}

// Advance moves one step forward. It reports false at the terminal step or
// while a submission is outstanding.
func (c *Controller) Advance() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.advanceLocked()
}

func (c *Controller) advanceLocked() bool {
	if c.submitting {
		return false
	}
	next, ok := c.step.Next()
	if !ok {
		return false
	}
	c.step = next
	return true
}

// Retreat moves one step back. It reports false at the initial step or while
// a submission is outstanding.
func (c *Controller) Retreat() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	prev, ok := c.step.Prev()
	if !ok {
		return false
	}
	c.step = prev
	return true
}

// SetField writes one draft field regardless of the current step.
func (c *Controller) SetField(name string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.Set(name, value)
}

// Cancel discards the draft and returns to the initial step. It is refused
// while a submission is outstanding.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.submitting {
		return false
	}
	c.resetLocked()
	return true
}

func (c *Controller) resetLocked() {
	c.step = FirstStep
	c.draft = NewDraft()
}

// Submit is the primary action. Before the terminal step it behaves exactly
// like Advance. On the terminal step it hands a copy of the draft to the
// Creator; success resets the wizard, failure keeps everything for a retry.
// A second Submit while the first is still waiting on the Creator is ignored.
func (c *Controller) Submit(ctx context.Context) Result {
	c.mu.Lock()
	if c.submitting {
		step := c.step
		c.mu.Unlock()
		return Result{Outcome: OutcomeIgnored, Step: step}
	}
	if !c.step.IsLast() {
		c.advanceLocked()
		step := c.step
		c.mu.Unlock()
		return Result{Outcome: OutcomeAdvanced, Step: step}
	}
	c.submitting = true
	payload := c.draft.Clone()
	c.mu.Unlock()

	id, err := c.create(ctx, payload)

	c.mu.Lock()
	c.submitting = false
	if err != nil {
		step := c.step
		c.mu.Unlock()
		err = fmt.Errorf("%w: %w", ErrSubmissionFailed, err)
		if c.onFailed != nil {
			c.onFailed(err)
		}
		return Result{Outcome: OutcomeFailed, Step: step, Err: err}
	}
	c.resetLocked()
	c.mu.Unlock()

	if c.onCreated != nil {
		c.onCreated(id)
	}
	return Result{Outcome: OutcomeCreated, Step: FirstStep, ListingID: id}
}

func (c *Controller) create(ctx context.Context, payload Draft) (id string, err error) {
	if c.creator == nil {
		return "", errors.New("no listing creator configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("listing creator panicked: %v", r)
		}
	}()
	return c.creator.Create(ctx, payload)
}
