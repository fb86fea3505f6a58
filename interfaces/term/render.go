package term

import (
	"fmt"
	"io"

	"startuphub/application/controller"
	apperrors "startuphub/pkg/errors"
)

// Renderer draws page state as plain terminal text. The four lifecycle
// renderings are distinct on purpose: a page in flight shows a spinner
// line, never a blank screen, and an empty list is labelled as such rather
// than rendered as nothing.
type Renderer struct {
	w io.Writer
}

// NewRenderer creates a renderer over the given writer.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Header draws the screen title.
func (r *Renderer) Header(title string) {
	fmt.Fprintf(r.w, "== %s ==\n", title)
}

// Banner draws a transient notification, if one is active.
func (r *Renderer) Banner(b *controller.Banner) {
	if b == nil {
		return
	}
	prefix := "ok"
	if b.Kind == controller.BannerError {
		prefix = "!!"
	}
	fmt.Fprintf(r.w, "[%s] %s\n", prefix, b.Message)
}

// List draws a list page state: loading, error, empty or the item lines.
func (r *Renderer) List(phase controller.Phase, err error, lines []string, emptyLabel string) {
	switch phase {
	case controller.PhaseLoading:
		fmt.Fprintln(r.w, "Loading...")
	case controller.PhaseError:
		fmt.Fprintf(r.w, "Error: %s\n", apperrors.UserMessage(err))
	default:
		if len(lines) == 0 {
			fmt.Fprintln(r.w, emptyLabel)
			return
		}
		for _, line := range lines {
			fmt.Fprintf(r.w, "  %s\n", line)
		}
	}
}

// Record draws a single-record page state. absentLabel shows when the
// record does not exist yet.
func (r *Renderer) Record(phase controller.Phase, err error, present bool, lines []string, absentLabel string) {
	switch phase {
	case controller.PhaseLoading:
		fmt.Fprintln(r.w, "Loading...")
	case controller.PhaseError:
		fmt.Fprintf(r.w, "Error: %s\n", apperrors.UserMessage(err))
	default:
		if !present {
			fmt.Fprintln(r.w, absentLabel)
			return
		}
		for _, line := range lines {
			fmt.Fprintf(r.w, "  %s\n", line)
		}
	}
}
