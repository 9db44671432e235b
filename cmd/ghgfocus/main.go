// Command ghgfocus recomputes and reports greenhouse-gas emissions from
// loosely-labeled spreadsheet exports under selectable GWP scenarios.
package main

import (
	"errors"
	"os"

	"github.com/rshade/ghgfocus/internal/cli"
	"github.com/rshade/ghgfocus/internal/schema"
	"github.com/rshade/ghgfocus/pkg/version"
)

// schemaExitCode distinguishes "your file is unusable" from ordinary
// failures so pipelines can tell them apart.
const schemaExitCode = 2

func main() {
	if err := run(); err != nil {
		os.Exit(exitCode(err))
	}
}

func run() error {
	return cli.NewRootCmd(version.GetVersion()).Execute()
}

// exitCode maps an execution error to a process exit code. Cobra has
// already printed the error by the time this runs.
func exitCode(err error) int {
	var schemaErr *schema.SchemaError
	if errors.As(err, &schemaErr) {
		return schemaExitCode
	}
	return 1
}
