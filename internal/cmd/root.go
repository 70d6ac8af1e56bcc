// Package cmd wires the launcher's command-line surface. The root
// command disables cobra's flag parsing: apart from the few launcher
// flags handled here, the argument vector belongs to the interpreter
// and must pass through untouched.
package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/launch"
	"github.com/quantmind-br/pylaunch/internal/resolve"
	"github.com/quantmind-br/pylaunch/internal/scan"
	"github.com/quantmind-br/pylaunch/internal/ui"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, env config.Environment, fs afero.Fs, execer launch.Execer, log *zerolog.Logger, launcherVersion string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "py [-X | -X.Y] [script] [args...]",
		Short: "Launch the right Python interpreter",
		Long: `Resolves which installed Python interpreter an ambiguous "run Python"
request refers to and replaces itself with it, forwarding all
remaining arguments.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := resolve.New(scan.New(fs, log), log)

			if len(args) > 0 {
				switch args[0] {
				case "-h", "--help":
					return runHelp(cmd, cfg, env, resolver, launcherVersion)
				case "--list":
					return runList(cmd, args[1:], cfg, env, resolver)
				case "-i", "--interactive":
					return runInteractive(cmd, args[1:], cfg, env, resolver, execer)
				}
			}

			builder := launch.NewBuilder(fs, env, cfg, resolver, log)
			request, err := builder.Build(args)
			if err != nil {
				reportResolutionFailure(err, args, cfg, env, resolver)
				return err
			}

			log.Debug().
				Str("executable", request.Executable).
				Strs("argv", request.Argv).
				Msg("handing off")

			if err := execer.Exec(request.Executable, request.Argv); err != nil {
				// Resolution already committed; nothing to recover.
				ui.PrintError("%v", err)
				return err
			}
			return nil
		},
	}

	return cmd
}

// reportResolutionFailure prints the terminal diagnostic and, when
// something was discovered at all, the closest installed versions to
// what was asked for.
func reportResolutionFailure(err error, args []string, cfg *config.Config, env config.Environment, resolver *resolve.Resolver) {
	ui.PrintError("%v", err)

	requestedText := ""
	if len(args) > 0 {
		if requested, ok := launch.VersionFromFlag(args[0]); ok {
			requestedText = requested.String()
		}
	}
	if requestedText == "" {
		return
	}

	candidates := resolver.All(env.SearchPath(cfg))
	versions := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		versions = append(versions, candidate.Version.String())
	}

	for _, suggestion := range ui.Suggestions(requestedText, versions, 3) {
		ui.PrintInfo("closest match: python%s", suggestion)
	}
}
