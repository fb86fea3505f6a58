package controller

import (
	"context"
	"sync"
	"time"

	apperrors "startuphub/pkg/errors"
)

// Value is the single-record counterpart of Resource: profile pages and the
// dashboard hold one server-owned record rather than a list. The phase
// machine is the same; absence is a distinct content state rather than an
// error, so a startup without a profile yet lands on the create form.
type Value[T any] struct {
	mu               sync.Mutex
	fetch            func(ctx context.Context) (T, error)
	phase            Phase
	value            T
	present          bool
	err              error
	banner           *Banner
	bannerSeq        int
	generation       int
	closed           bool
	notFoundIsAbsent bool
	opts             Options
}

// NewValue creates a single-record controller. When notFoundIsAbsent is
// set, a not-found fetch settles on content with no record instead of the
// error phase.
func NewValue[T any](fetch func(ctx context.Context) (T, error), notFoundIsAbsent bool, opts Options) *Value[T] {
	return &Value[T]{
		fetch:            fetch,
		phase:            PhaseLoading,
		notFoundIsAbsent: notFoundIsAbsent,
		opts:             opts.normalize(),
	}
}

// Load fetches the record. Failure keeps any previously fetched record.
func (v *Value[T]) Load(ctx context.Context) {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.generation++
	gen := v.generation
	v.phase = PhaseLoading
	v.mu.Unlock()

	val, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || gen != v.generation {
		return
	}
	if err != nil {
		if v.notFoundIsAbsent && apperrors.IsNotFound(err) {
			var zero T
			v.value = zero
			v.present = false
			v.err = nil
			v.phase = PhaseContent
			return
		}
		v.phase = PhaseError
		v.err = err
		return
	}
	v.value = val
	v.present = true
	v.err = nil
	v.phase = PhaseContent
}

// Mutate runs a mutation and, on success, installs the record it returned.
// A failed mutation leaves the current record untouched and raises an error
// banner.
func (v *Value[T]) Mutate(ctx context.Context, op func(ctx context.Context) (T, error), successMsg string) error {
	val, err := op(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return err
	}
	if err != nil {
		v.setBannerLocked(BannerError, apperrors.UserMessage(err))
		return err
	}
	v.value = val
	v.present = true
	v.phase = PhaseContent
	if successMsg != "" {
		v.setBannerLocked(BannerSuccess, successMsg)
	}
	return nil
}

// Value returns the record and whether one is present.
func (v *Value[T]) Value() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value, v.present
}

// Phase returns the current lifecycle phase.
func (v *Value[T]) Phase() Phase {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.phase
}

// Err returns the load error, if the controller is in the error phase.
func (v *Value[T]) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// Banner returns the active banner, if one has not expired yet.
func (v *Value[T]) Banner() *Banner {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.banner
}

// ShowBanner raises a banner directly.
func (v *Value[T]) ShowBanner(kind BannerKind, message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.setBannerLocked(kind, message)
}

func (v *Value[T]) setBannerLocked(kind BannerKind, message string) {
	v.bannerSeq++
	seq := v.bannerSeq
	v.banner = &Banner{Kind: kind, Message: message}
	time.AfterFunc(v.opts.BannerTTL, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.bannerSeq == seq {
			v.banner = nil
		}
	})
}

// Close marks the controller disposed and drops late fetch results.
func (v *Value[T]) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
	v.generation++
	v.banner = nil
	v.bannerSeq++
}
