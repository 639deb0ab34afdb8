package tool

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
)

const argsHelp = `
SCENE:
    path to a YAML scene file describing the sprite

DESTINATION:
    directory receiving one PNG file per frame (frame-000.png, ...)
    if absent - current working directory
`

// usageErrorHandler leaves reporting to the application error handler.
func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

// Commands returns the sprite processing subcommands.
func Commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:         "flatten",
			Usage:        "Flattens layers of a scene and exports its frames",
			OnUsageError: usageErrorHandler,
			Action:       Flatten,
			Flags: []cli.Flag{
				&cli.StringSliceFlag{Name: "layer", Aliases: []string{"l"}, Usage: "flatten layer `NAME` (repeatable), all top-level layers if absent"},
				&cli.BoolFlag{Name: "merge-down", Aliases: []string{"md"}, Usage: "draw into the bottom selected layer instead of a new one"},
				&cli.BoolFlag{Name: "legacy-blend", Usage: "use the legacy blending formulas"},
				&cli.BoolFlag{Name: "undo", Usage: "undo the operation before exporting"},
			},
			ArgsUsage:          "SCENE [DESTINATION]",
			CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, argsHelp),
		},
		{
			Name:         "mergedown",
			Usage:        "Merges a layer into the one below it and exports the frames",
			OnUsageError: usageErrorHandler,
			Action:       MergeDown,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "layer", Aliases: []string{"l"}, Required: true, Usage: "merge layer `NAME` down"},
				&cli.BoolFlag{Name: "undo", Usage: "undo the operation before exporting"},
			},
			ArgsUsage:          "SCENE [DESTINATION]",
			CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, argsHelp),
		},
		{
			Name:         "render",
			Usage:        "Exports the frames of a scene",
			OnUsageError: usageErrorHandler,
			Action:       Render,
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "legacy-blend", Usage: "use the legacy blending formulas"},
			},
			ArgsUsage:          "SCENE [DESTINATION]",
			CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, argsHelp),
		},
	}
}
