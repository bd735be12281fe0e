// Package terminal plays the game on a text console: numbered menus in,
// coloured table out.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dice-delve/internal/errors"
	"github.com/KirkDiggler/dice-delve/internal/orchestrators/delve"
)

var (
	_ delve.ChoiceProvider = (*Terminal)(nil)
	_ delve.Display        = (*Terminal)(nil)
)

// Config holds the console streams
type Config struct {
	In    io.Reader
	Out   io.Writer
	Color bool
}

// Validate ensures both streams are set
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.In == nil {
		vb.RequiredField("In")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}

	return vb.Build()
}

// Terminal is both the ChoiceProvider and the Display of a console game
type Terminal struct {
	in      *bufio.Scanner
	out     io.Writer
	palette palette
}

// New creates a terminal over the given streams
func New(cfg *Config) (*Terminal, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Terminal{
		in:      bufio.NewScanner(cfg.In),
		out:     cfg.Out,
		palette: newPalette(cfg.Color),
	}, nil
}

// Choose prints a numbered menu and reads one line. A number picks the
// option at that position; anything else is passed through as a key.
func (t *Terminal) Choose(ctx context.Context, prompt *delve.Prompt, options []delve.Option) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.WrapWithCode(err, errors.CodeCanceled, "game interrupted")
	}

	fmt.Fprintln(t.out)
	t.palette.title.Fprintln(t.out, prompt.Title)
	for _, line := range prompt.Details {
		fmt.Fprintf(t.out, "  %s\n", line)
	}
	for i, o := range options {
		fmt.Fprintf(t.out, "  %s %s\n", t.palette.key.Sprintf("%2d)", i+1), o.Label)
	}
	fmt.Fprint(t.out, "> ")

	if !t.in.Scan() {
		if err := t.in.Err(); err != nil {
			return "", errors.Wrap(err, "failed to read choice")
		}
		return "", errors.Canceled("input closed")
	}

	answer := strings.TrimSpace(t.in.Text())
	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1].Key, nil
		}
		t.palette.warn.Fprintf(t.out, "Pick a number between 1 and %d\n", len(options))
		return answer, nil
	}

	for _, o := range options {
		if strings.EqualFold(o.Key, answer) {
			return o.Key, nil
		}
	}
	t.palette.warn.Fprintf(t.out, "Unknown choice %q\n", answer)

	return answer, nil
}
