// Package controller implements the view-state machines behind every
// resource page: a generic list controller, a single-record variant and a
// modal form sub-controller. Pages compose these over the typed API
// clients; rendering layers only ever read the state they expose.
package controller

import (
	"context"
	"sync"
	"time"

	apperrors "startuphub/pkg/errors"

	"go.uber.org/zap"
)

// Phase is the page lifecycle state. A page starts loading, then settles on
// content or error. Content pages stay content through filter changes and
// mutations; only an explicit refresh goes back through loading.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseContent
	PhaseError
)

// String renders the phase for logs.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseContent:
		return "content"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// DefaultBannerTTL is how long success and error banners stay visible.
const DefaultBannerTTL = 3 * time.Second

// BannerKind distinguishes success from error banners.
type BannerKind int

const (
	BannerSuccess BannerKind = iota
	BannerError
)

// Banner is a transient notification shown after a mutation.
type Banner struct {
	Kind    BannerKind
	Message string
}

// Options tunes a controller. The zero value is usable.
type Options struct {
	BannerTTL time.Duration
	Logger    *zap.Logger
}

func (o Options) normalize() Options {
	if o.BannerTTL == 0 {
		o.BannerTTL = DefaultBannerTTL
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Resource is the list-page state machine. T is the item type; fetch
// produces the full list. All methods are safe for concurrent use.
type Resource[T any] struct {
	mu         sync.Mutex
	fetch      func(ctx context.Context) ([]T, error)
	phase      Phase
	items      []T
	filter     func(T) bool
	err        error
	banner     *Banner
	bannerSeq  int
	generation int
	closed     bool
	opts       Options
}

// NewResource creates a list controller over a fetch function. The
// controller starts in the loading phase; call Load to populate it.
func NewResource[T any](fetch func(ctx context.Context) ([]T, error), opts Options) *Resource[T] {
	return &Resource[T]{
		fetch: fetch,
		phase: PhaseLoading,
		opts:  opts.normalize(),
	}
}

// Load fetches the list and replaces the current one wholesale. The page
// shows loading while the fetch is in flight. On failure the error phase is
// entered but the previously fetched items are kept, so a later successful
// refresh resumes from content without a blank flash.
func (r *Resource[T]) Load(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.generation++
	gen := r.generation
	r.phase = PhaseLoading
	r.mu.Unlock()

	items, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.generation {
		// A newer load or a Close superseded this fetch.
		return
	}
	if err != nil {
		r.phase = PhaseError
		r.err = err
		r.opts.Logger.Debug("Load failed", zap.Error(err))
		return
	}
	r.items = items
	r.err = nil
	r.phase = PhaseContent
}

// Refresh re-fetches the list without leaving the content phase. Pages use
// it when a mutation on one resource invalidates another. Failure keeps the
// stale list and raises an error banner.
func (r *Resource[T]) Refresh(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	gen := r.generation
	r.mu.Unlock()

	items, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.generation {
		return
	}
	if err != nil {
		r.setBannerLocked(BannerError, apperrors.UserMessage(err))
		return
	}
	r.items = items
	r.phase = PhaseContent
}

// MutateRefetch runs a mutation and, on success, silently re-fetches the
// whole list. The page never goes back to loading; a failed re-fetch keeps
// the stale list and raises an error banner. A failed mutation leaves all
// state exactly as it was.
func (r *Resource[T]) MutateRefetch(ctx context.Context, op func(ctx context.Context) error, successMsg string) error {
	if err := r.run(ctx, op); err != nil {
		return err
	}

	r.mu.Lock()
	gen := r.generation
	r.mu.Unlock()

	items, err := r.fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.generation {
		return nil
	}
	if err != nil {
		r.setBannerLocked(BannerError, apperrors.UserMessage(err))
		return nil
	}
	r.items = items
	r.phase = PhaseContent
	if successMsg != "" {
		r.setBannerLocked(BannerSuccess, successMsg)
	}
	return nil
}

// MutatePatch runs a mutation and, on success, applies a local patch to the
// fetched list instead of re-fetching. A failed mutation leaves all state
// exactly as it was.
func (r *Resource[T]) MutatePatch(ctx context.Context, op func(ctx context.Context) error, patch func([]T) []T, successMsg string) error {
	if err := r.run(ctx, op); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.items = patch(r.items)
	r.phase = PhaseContent
	if successMsg != "" {
		r.setBannerLocked(BannerSuccess, successMsg)
	}
	return nil
}

// run executes the mutation op and raises the error banner on failure.
func (r *Resource[T]) run(ctx context.Context, op func(ctx context.Context) error) error {
	if err := op(ctx); err != nil {
		r.mu.Lock()
		if !r.closed {
			r.setBannerLocked(BannerError, apperrors.UserMessage(err))
		}
		r.mu.Unlock()
		return err
	}
	return nil
}

// SetFilter installs a pure predicate over the last fetched list. A nil
// predicate shows everything. Changing the filter never refetches and never
// leaves the content phase.
func (r *Resource[T]) SetFilter(pred func(T) bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.filter = pred
}

// Items returns the visible items: the last fetch with the current filter
// applied, in source order.
func (r *Resource[T]) Items() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.filter == nil {
		out := make([]T, len(r.items))
		copy(out, r.items)
		return out
	}
	var out []T
	for _, it := range r.items {
		if r.filter(it) {
			out = append(out, it)
		}
	}
	return out
}

// All returns the last fetched list unfiltered. Pages use it for counters
// that must not follow the active filter.
func (r *Resource[T]) All() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Phase returns the current lifecycle phase.
func (r *Resource[T]) Phase() Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Err returns the load error, if the controller is in the error phase.
func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Banner returns the active banner, if one has not expired yet.
func (r *Resource[T]) Banner() *Banner {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.banner
}

// ShowBanner raises a banner directly. Pages use it for outcomes that do
// not go through a mutation on this controller.
func (r *Resource[T]) ShowBanner(kind BannerKind, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.setBannerLocked(kind, message)
}

// setBannerLocked installs a banner and arms its expiry timer. Caller holds
// the mutex.
func (r *Resource[T]) setBannerLocked(kind BannerKind, message string) {
	r.bannerSeq++
	seq := r.bannerSeq
	r.banner = &Banner{Kind: kind, Message: message}
	time.AfterFunc(r.opts.BannerTTL, func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		if r.bannerSeq == seq {
			r.banner = nil
		}
	})
}

// Close marks the controller disposed. In-flight loads finish but their
// results are dropped; subsequent calls are no-ops.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.generation++
	r.banner = nil
	r.bannerSeq++
}

// Append returns a patch that adds an item to the end of the list.
func Append[T any](item T) func([]T) []T {
	return func(items []T) []T {
		return append(items, item)
	}
}

// Replace returns a patch that swaps the first item matching the predicate,
// preserving its position. The list is unchanged when nothing matches.
func Replace[T any](match func(T) bool, item T) func([]T) []T {
	return func(items []T) []T {
		out := make([]T, len(items))
		copy(out, items)
		for i, it := range out {
			if match(it) {
				out[i] = item
				break
			}
		}
		return out
	}
}

// Remove returns a patch that drops every item matching the predicate,
// preserving the order of the rest.
func Remove[T any](match func(T) bool) func([]T) []T {
	return func(items []T) []T {
		var out []T
		for _, it := range items {
			if !match(it) {
				out = append(out, it)
			}
		}
		return out
	}
}
