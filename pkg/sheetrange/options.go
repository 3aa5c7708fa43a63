// Package sheetrange extracts structured data from xlsx workbooks and slices
// it by cell range.
package sheetrange

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts cells and table candidates only.
	ModeLight Mode = "light"
	// ModeStandard adds shapes with text, connectors, charts and print areas.
	ModeStandard Mode = "standard"
	// ModeVerbose adds cell hyperlinks, every shape, and shape and chart sizes.
	ModeVerbose Mode = "verbose"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeLight, ModeStandard, ModeVerbose:
		return m, nil
	default:
		return "", errors.Wrapf(ErrInvalidMode, "%q (must be light, standard, or verbose)", s)
	}
}

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// IncludeLinks specifies whether to include cell hyperlinks.
	// If nil, defaults to true for verbose mode, false otherwise.
	IncludeLinks *bool
	// IncludePrintAreas specifies whether to include print areas.
	// If nil, defaults to false for light mode, true otherwise.
	IncludePrintAreas *bool
	// Logger receives warnings about sheets that could not be fully read.
	// If nil, slog.Default() is used.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode: ModeStandard,
	}
}

// ShouldIncludeLinks returns whether to include cell hyperlinks.
func (o Options) ShouldIncludeLinks() bool {
	if o.IncludeLinks != nil {
		return *o.IncludeLinks
	}
	return o.Mode == ModeVerbose
}

// ShouldIncludePrintAreas returns whether to include print areas.
func (o Options) ShouldIncludePrintAreas() bool {
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return o.Mode != ModeLight
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
