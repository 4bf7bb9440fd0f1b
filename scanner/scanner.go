package scanner

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/internal/suggest"
	"github.com/vk/cmdtree/schema"
)

// RawOptions holds the raw, uncoerced values collected for each option,
// keyed by the option's canonical long name regardless of which alias was
// used on the command line.
type RawOptions struct {
	values map[string][]string
	counts map[string]int
}

func newRawOptions() *RawOptions {
	return &RawOptions{
		values: make(map[string][]string),
		counts: make(map[string]int),
	}
}

// Values returns every raw value given for the named option, in encounter
// order.
func (r *RawOptions) Values(name string) []string {
	return r.values[name]
}

// Count returns how many times the named option occurred.
func (r *RawOptions) Count(name string) int {
	return r.counts[name]
}

// Seen reports whether the named option occurred at all.
func (r *RawOptions) Seen(name string) bool {
	return r.counts[name] > 0
}

func (r *RawOptions) record(opt *schema.Option, value string, hasValue bool) {
	r.counts[opt.Name]++
	if hasValue {
		r.values[opt.Name] = append(r.values[opt.Name], value)
	}
}

// Scan walks argv once, left to right, classifying each token against the
// recognition table of the given schema. It returns the collected raw
// option values and the ordered leftover positional candidates.
//
// Scan returns ErrHelp or ErrVersion as soon as a reserved token is seen,
// an *UnknownOptionError for an unregistered flag, and a
// *MissingValueError for a value option with nothing to consume.
func Scan(ctx context.Context, args []string, opts *schema.Options) (*RawOptions, []string, error) {
	logger := ctxlog.FromContext(ctx)
	raw := newRawOptions()
	var positionals []string

	for i := 0; i < len(args); i++ {
		tok := args[i]

		// Everything after a literal "--" is positional, unconditionally.
		if tok == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}

		if err := reserved(tok); err != nil {
			return nil, nil, err
		}

		if !strings.HasPrefix(tok, "-") || tok == "-" {
			positionals = append(positionals, tok)
			continue
		}

		key := strings.TrimPrefix(tok, "-")
		key = strings.TrimPrefix(key, "-")
		value := ""
		hasInline := false
		if idx := strings.Index(key, "="); idx >= 0 {
			key, value, hasInline = key[:idx], key[idx+1:], true
		}

		opt, ok := opts.Lookup(key)
		if !ok {
			return nil, nil, &UnknownOptionError{
				Token:      tok,
				Suggestion: suggest.Nearest(key, opts.Names()),
			}
		}

		if !opt.TakesValue() {
			if hasInline {
				return nil, nil, fmt.Errorf("option --%s does not take a value", opt.Name)
			}
			raw.record(opt, "", false)
			continue
		}

		if !hasInline {
			if i+1 >= len(args) {
				return nil, nil, &MissingValueError{Option: opt.Name}
			}
			// The reserved tokens are never mistaken for an option's value.
			if err := reserved(args[i+1]); err != nil {
				return nil, nil, err
			}
			value = args[i+1]
			i++
		}
		raw.record(opt, value, true)
	}

	logger.Debug("Scan complete.", "options_seen", len(raw.counts), "positionals", len(positionals))
	return raw, positionals, nil
}

// reserved maps the built-in help and version tokens to their control
// sentinels.
func reserved(tok string) error {
	switch tok {
	case "--help", "-h":
		return ErrHelp
	case "--version":
		return ErrVersion
	}
	return nil
}
