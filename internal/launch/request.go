// Package launch turns command-line arguments into a concrete
// interpreter invocation and hands the process over to it.
package launch

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/resolve"
	"github.com/quantmind-br/pylaunch/internal/shebang"
	"github.com/quantmind-br/pylaunch/internal/version"
)

// Request is the final launch decision: which executable to run and
// the full argument vector to run it with.
type Request struct {
	Executable string
	Argv       []string
}

// Builder assembles a Request from the highest-priority version
// source: explicit flag, active virtual environment, script shebang,
// environment default, else any version at all. Exactly one source
// decides; this is not a merge.
type Builder struct {
	fs       afero.Fs
	env      config.Environment
	cfg      *config.Config
	resolver *resolve.Resolver
	log      *zerolog.Logger
}

// NewBuilder creates a Builder.
func NewBuilder(fs afero.Fs, env config.Environment, cfg *config.Config, resolver *resolve.Resolver, log *zerolog.Logger) *Builder {
	return &Builder{
		fs:       fs,
		env:      env,
		cfg:      cfg,
		resolver: resolver,
		log:      log,
	}
}

// VersionFromFlag extracts a version request from a command-line
// argument of the form -X or -X.Y. Any other argument, including
// regular interpreter flags like -S, is not a version selector.
func VersionFromFlag(arg string) (version.Requested, bool) {
	if len(arg) < 2 || !strings.HasPrefix(arg, "-") {
		return version.Requested{}, false
	}

	requested, err := version.ParseRequested(arg[1:])
	if err != nil || requested.Kind == version.KindAny {
		return version.Requested{}, false
	}
	return requested, true
}

// Build resolves args (the argument vector with the launcher's own
// path already stripped) into a Request.
func (b *Builder) Build(args []string) (*Request, error) {
	requested := version.Requested{Kind: version.KindAny}
	explicit := false

	if len(args) > 0 {
		if flagVersion, ok := VersionFromFlag(args[0]); ok {
			requested = flagVersion
			explicit = true
			args = args[1:]
		}
	}

	// An activated virtual environment answers the unconstrained case
	// by itself; an explicit flag is a constraint its single
	// interpreter cannot be assumed to satisfy.
	if !explicit && b.env.VirtualEnv != "" {
		executable := filepath.Join(b.env.VirtualEnv, "bin", "python")
		b.log.Debug().Str("path", executable).Msg("using active virtual environment")
		return newRequest(executable, nil, args), nil
	}

	var shebangArgs []string
	if !explicit && len(args) > 0 {
		if result := shebang.ParseFile(b.fs, args[0]); result != nil {
			requested = result.Version
			shebangArgs = result.Args
			b.log.Debug().
				Str("script", args[0]).
				Str("version", requested.String()).
				Strs("args", shebangArgs).
				Msg("using shebang version")
		}
	}

	if requested.Kind == version.KindAny {
		requested = b.defaultVersion()
	}
	requested = b.narrowMajor(requested)

	executable, err := b.resolver.Find(requested, b.env.SearchPath(b.cfg))
	if err != nil {
		return nil, err
	}

	return newRequest(executable, shebangArgs, args), nil
}

// defaultVersion consults PY_PYTHON, then the configured default.
// Malformed values are ignored rather than reported.
func (b *Builder) defaultVersion() version.Requested {
	for _, text := range []string{b.env.DefaultVersion, b.cfg.Search.DefaultVersion} {
		if text == "" {
			continue
		}
		requested, err := version.ParseRequested(text)
		if err != nil {
			b.log.Debug().Str("value", text).Msg("ignoring malformed default version")
			continue
		}
		return requested
	}
	return version.Requested{Kind: version.KindAny}
}

// narrowMajor applies the PY_PYTHON{major} preference to a major-only
// request. The value is taken as-is, without sanity-checking it
// against the major it is registered under.
func (b *Builder) narrowMajor(requested version.Requested) version.Requested {
	if requested.Kind != version.KindMajorOnly {
		return requested
	}

	text, ok := b.env.MajorDefaults[requested.Major]
	if !ok {
		return requested
	}

	narrowed, err := version.ParseRequested(text)
	if err != nil || narrowed.Kind == version.KindAny {
		b.log.Debug().
			Uint("major", requested.Major).
			Str("value", text).
			Msg("ignoring malformed major default")
		return requested
	}
	return narrowed
}

// newRequest assembles the argument vector: executable, then the
// shebang's arguments, then the user's.
func newRequest(executable string, shebangArgs, userArgs []string) *Request {
	argv := make([]string, 0, 1+len(shebangArgs)+len(userArgs))
	argv = append(argv, executable)
	argv = append(argv, shebangArgs...)
	argv = append(argv, userArgs...)

	return &Request{
		Executable: executable,
		Argv:       argv,
	}
}
