package xlsxhtml

import (
	"github.com/charmbracelet/log"

	"github.com/aerissecure/xlsxhtml/colors"
	"github.com/aerissecure/xlsxhtml/style"
)

// ProgressFunc is invoked synchronously after each row of a sheet has been
// resolved. Rows are 1-based; sheets are 1-based out of totalSheets. An error
// aborts the whole conversion.
type ProgressFunc func(sheet, totalSheets, row, totalRows int) error

// Options configure a conversion. The zero value renders nothing useful; use
// DefaultOptions as the base.
type Options struct {
	// ConvertStyle enables per-cell style resolution. When false every cell
	// renders with the default style.
	ConvertStyle bool
	// ConvertSize enables pixel column widths and row heights. When false all
	// sizes resolve to auto.
	ConvertSize bool
	// ConvertHiddenSheets renders sheets marked hidden instead of skipping
	// them.
	ConvertHiddenSheets bool
	// ThemeOffset is added to theme color slot numbers before indexing the
	// document scheme. Leave at 0 unless the producing application used the
	// legacy skewed numbering.
	ThemeOffset int
	// DefaultColors are the per-facet fallbacks substituted whenever a color
	// fails to resolve.
	DefaultColors style.Defaults
	// Progress, when set, receives a callback per resolved row.
	Progress ProgressFunc
	// Log receives diagnostics about swallowed resolution failures. Nil
	// disables them.
	Log *log.Logger
}

// DefaultOptions enables style and size conversion, skips hidden sheets, and
// uses black text with light-gray borders as fallbacks.
func DefaultOptions() Options {
	return Options{
		ConvertStyle:  true,
		ConvertSize:   true,
		DefaultColors: style.StandardDefaults(),
	}
}

func (o Options) colorResolver(scheme *colors.Scheme) *colors.Resolver {
	return &colors.Resolver{Scheme: scheme, ThemeOffset: o.ThemeOffset, Log: o.Log}
}
