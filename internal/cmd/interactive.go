package cmd

import (
	"github.com/spf13/cobra"

	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/launch"
	"github.com/quantmind-br/pylaunch/internal/resolve"
	"github.com/quantmind-br/pylaunch/internal/ui"
	"github.com/quantmind-br/pylaunch/internal/version"
)

// runInteractive lets the user pick the interpreter from everything
// discovered, optionally narrowed by a version flag, then hands off
// to it with the remaining arguments.
func runInteractive(cmd *cobra.Command, args []string, cfg *config.Config, env config.Environment, resolver *resolve.Resolver, execer launch.Execer) error {
	requested := version.Requested{Kind: version.KindAny}
	if len(args) > 0 {
		if flagVersion, ok := launch.VersionFromFlag(args[0]); ok {
			requested = flagVersion
			args = args[1:]
		}
	}

	all := resolver.All(env.SearchPath(cfg))
	options := make([]ui.SelectOption, 0, len(all))
	paths := make([]string, 0, len(all))
	for _, candidate := range all {
		if candidate.Version.Matches(requested) == version.NotAtAll {
			continue
		}
		options = append(options, ui.SelectOption{
			Label:  "Python " + candidate.Version.String(),
			Detail: candidate.Path,
		})
		paths = append(paths, candidate.Path)
	}

	if len(options) == 0 {
		ui.PrintError("%v", resolve.ErrNoInterpreter)
		return resolve.ErrNoInterpreter
	}

	index, err := ui.SelectPrompt("Choose an interpreter", options)
	if err != nil {
		return err
	}

	executable := paths[index]
	argv := append([]string{executable}, args...)
	if err := execer.Exec(executable, argv); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}
