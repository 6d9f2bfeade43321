package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/zzft/ftsite/cmd/ftsite/commands"
	ferrors "github.com/zzft/ftsite/internal/foundation/errors"
	"github.com/zzft/ftsite/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("ftsite"),
		kong.Description("Generate and check the learning-notes site configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Out: os.Stdout}, cli)
	os.Exit(ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err))
}
