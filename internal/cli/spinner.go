package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/mmcdole/podview/internal/tui/styles"
)

// clearLine wipes the spinner line
const clearLine = "\r\033[K"

// withSpinner runs fn and animates a spinner on w while it works. Without a
// terminal on w, fn just runs.
func withSpinner[T any](ctx context.Context, w io.Writer, label string, fn func(context.Context) (T, error)) (T, error) {
	if !isTerminal(w) {
		return fn(ctx)
	}

	type result struct {
		val T
		err error
	}
	resultCh := make(chan result, 1)

	go func() {
		val, err := fn(ctx)
		resultCh <- result{val, err}
	}()

	frames := spinner.Dot.Frames
	frame := 0
	draw := func() {
		fmt.Fprintf(w, "\r%s %s", styles.SpinnerStyle.Render(frames[frame%len(frames)]), label)
	}
	draw()

	ticker := time.NewTicker(spinner.Dot.FPS)
	defer ticker.Stop()

	for {
		select {
		case res := <-resultCh:
			fmt.Fprint(w, clearLine)
			return res.val, res.err
		case <-ticker.C:
			frame++
			draw()
		}
	}
}
