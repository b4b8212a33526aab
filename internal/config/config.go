// Package config holds process-wide toggles shared across the pipeline,
// mirroring the teacher's internal/config: a handful of package-level
// vars flipped once at startup rather than threaded through every call.
package config

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Version is the compiler's version string, set at build time.
var Version = "0.1.0"

const SourceFileExt = ".ml"

// IsTestMode is a process-wide test-mode toggle. No package in this module
// reads it; in particular the lowering-run uuid is generated either way.
var IsTestMode = false

// colorOverride, when non-nil, forces color on/off regardless of the
// terminal check (set by --color/--no-color).
var colorOverride *bool

// SetColorOverride is called by the CLI after flag parsing.
func SetColorOverride(on bool) { colorOverride = &on }

// ColorEnabled reports whether diagnostics/banners should be ANSI-colored.
// Grounded on the teacher's builtins_term.go: check NO_COLOR, then isatty.
func ColorEnabled() bool {
	if colorOverride != nil {
		return *colorOverride
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Banner section headers printed by cmd/mlc, per spec §6.
const (
	BannerTypeInference   = "Type Inference"
	BannerTreeInterpreter = "Tree Interpreter"
	BannerCpsLowering     = "CPS Lowering"
	BannerOptimizedCps    = "Optimized CPS"
)
