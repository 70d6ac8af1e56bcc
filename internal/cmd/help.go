package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/pylaunch/internal/config"
	"github.com/quantmind-br/pylaunch/internal/resolve"
	"github.com/quantmind-br/pylaunch/internal/ui"
	"github.com/quantmind-br/pylaunch/internal/version"
)

const helpTemplate = `Python Launcher for Unix %s

usage: %s [launcher-flags] [python-args]

Launcher flags:
  -h, --help         show this message
  --list             list all discovered interpreters (--json, --details)
  -i, --interactive  pick the interpreter to run from a list
  -X                 run the latest Python X (e.g. -3)
  -X.Y               run Python X.Y exactly (e.g. -3.6)

Anything else is passed to the resolved interpreter unchanged. When
the first argument is a script, its shebang line may select the
version. An activated virtual environment (VIRTUAL_ENV) wins over
everything except an explicit version flag; PY_PYTHON and
PY_PYTHON{major} set defaults.

Unconstrained, this launcher would run: %s
`

// runHelp prints usage together with the interpreter an
// unconstrained resolution would pick right now.
func runHelp(cmd *cobra.Command, cfg *config.Config, env config.Environment, resolver *resolve.Resolver, launcherVersion string) error {
	executable, err := resolver.Find(version.Requested{Kind: version.KindAny}, env.SearchPath(cfg))
	if err != nil {
		ui.PrintError("%v", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), helpTemplate, launcherVersion, os.Args[0], executable)
	return nil
}
