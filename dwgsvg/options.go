package dwgsvg

import "github.com/kelseyhightower/envconfig"

// Options controls a single render call, the Go analog of the CLI's
// -v[0-9]/--mspace flags and the source's data-gen-vers string (§1.1,
// §6).
type Options struct {
	// ModelSpaceOnly skips paper space and renders model space
	// directly, the analog of --mspace.
	ModelSpaceOnly bool

	// Verbose gates the one-line-per-ignored-entity diagnostic (§7).
	// When set, Render logs skip-silent decisions at debug level
	// through slog.Default(); when unset, nothing is logged.
	Verbose bool

	// DataGenVersion overrides the SVG prologue's data-gen-vers
	// attribute. Defaults to "2026-01-26a" when empty, matching the
	// source's literal string.
	DataGenVersion string

	// DefaultFont overrides the font resolver's fallback family
	// (normally "Courier") used when a STYLE has no font_file or names
	// an SHX font.
	DefaultFont string
}

// envOptions is the envconfig-tagged shape LoadOptionsFromEnv populates,
// kept separate from Options so Options itself stays free of envconfig
// struct tags for callers who never touch the environment.
type envOptions struct {
	ModelSpaceOnly bool   `envconfig:"MSPACE_ONLY" default:"false"`
	Verbose        bool   `envconfig:"VERBOSE" default:"false"`
	DataGenVersion string `envconfig:"DATA_GEN_VERSION" default:""`
	DefaultFont    string `envconfig:"DEFAULT_FONT" default:""`
}

// LoadOptionsFromEnv builds Options from DWG2SVG_-prefixed environment
// variables, letting a host process override per-call defaults without
// owning a CLI flag parser (§1.1).
func LoadOptionsFromEnv() (Options, error) {
	var e envOptions
	if err := envconfig.Process("dwg2svg", &e); err != nil {
		return Options{}, err
	}
	return Options{
		ModelSpaceOnly: e.ModelSpaceOnly,
		Verbose:        e.Verbose,
		DataGenVersion: e.DataGenVersion,
		DefaultFont:    e.DefaultFont,
	}, nil
}

func (o Options) dataGenVersion() string {
	if o.DataGenVersion != "" {
		return o.DataGenVersion
	}
	return "2026-01-26a"
}
