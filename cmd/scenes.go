package cmd

import (
	"github.com/df07/go-ppm-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List built-in scenes and scene files.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Type", "Description", "File"})
	for _, info := range scenes {
		table.Append([]string{info.Name, info.Type, info.Description, info.FilePath})
	}
	table.Render()

	return nil
}
