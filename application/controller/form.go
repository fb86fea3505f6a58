package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "startuphub/pkg/errors"
)

// formValidate is shared across all form instantiations. validator caches
// struct metadata internally and is safe for concurrent use.
var formValidate = validator.New()

// Form is the modal sub-controller. T is the draft payload of one modal
// kind; each modal owns its own Form so its fields never mix with another
// modal's. The working copy is held by value: opening for edit copies the
// target's fields, and nothing aliases the host list until submit succeeds.
type Form[T any] struct {
	mu       sync.Mutex
	open     bool
	editing  bool
	targetID string
	working  T
}

// NewForm creates a closed, empty form.
func NewForm[T any]() *Form[T] {
	return &Form[T]{}
}

// OpenNew opens the modal in create mode with the given initial fields.
func (f *Form[T]) OpenNew(initial T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.editing = false
	f.targetID = ""
	f.working = initial
}

// OpenEdit opens the modal in edit mode, pre-filled with a copy of the
// target's current fields.
func (f *Form[T]) OpenEdit(targetID string, snapshot T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = true
	f.editing = true
	f.targetID = targetID
	f.working = snapshot
}

// Update applies a field mutation to the working copy. It is a no-op when
// the modal is closed.
func (f *Form[T]) Update(mutate func(*T)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.open {
		return
	}
	mutate(&f.working)
}

// Cancel closes the modal and discards the working copy.
func (f *Form[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
}

// Submit validates the working copy locally, then hands it to send. A
// validation failure never reaches the network and keeps the modal open. A
// send failure keeps the modal open with all fields intact so the user can
// retry. Success closes and empties the modal.
func (f *Form[T]) Submit(ctx context.Context, send func(ctx context.Context, draft T) error) error {
	f.mu.Lock()
	if !f.open {
		f.mu.Unlock()
		return apperrors.NewInternal("submit on a closed form", nil)
	}
	draft := f.working
	f.mu.Unlock()

	if err := validateDraft(draft); err != nil {
		return err
	}
	if err := send(ctx, draft); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.reset()
	return nil
}

// reset clears all modal state. Caller holds the mutex.
func (f *Form[T]) reset() {
	var zero T
	f.open = false
	f.editing = false
	f.targetID = ""
	f.working = zero
}

// IsOpen reports whether the modal is visible.
func (f *Form[T]) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// IsEdit reports whether the modal was opened on an existing item.
func (f *Form[T]) IsEdit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editing
}

// TargetID returns the ID of the item being edited, empty in create mode.
func (f *Form[T]) TargetID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.targetID
}

// Working returns the current working copy.
func (f *Form[T]) Working() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.working
}

// validateDraft checks the draft's validate tags and maps the first failure
// to a user-facing validation error.
func validateDraft(draft interface{}) error {
	err := formValidate.Struct(draft)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidation("Please fill in the required fields").WithCause(err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidation(fmt.Sprintf("%s is required", fe.Field())).WithCause(err)
	case "email":
		return apperrors.NewValidation(fmt.Sprintf("%s must be a valid email address", fe.Field())).WithCause(err)
	case "min":
		return apperrors.NewValidation(fmt.Sprintf("%s is too short", fe.Field())).WithCause(err)
	default:
		return apperrors.NewValidation(fmt.Sprintf("%s is invalid", fe.Field())).WithCause(err)
	}
}
