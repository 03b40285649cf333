package main

import (
	"os"

	"github.com/bytearena/visgraph/common/utils"
	"github.com/urfave/cli"
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Visibility graph of a planar scene"
	app.Name = "visgraph"
	app.Version = utils.GetVersion()

	app.Commands = []cli.Command{
		{
			Name:    "graph",
			Aliases: []string{"g"},
			Usage:   "Compute the visibility graph of a scene file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "in", Value: "-", Usage: "Scene file, - reads stdin"},
				cli.StringFlag{Name: "out", Value: "-", Usage: "Graph file, - writes stdout"},
				cli.StringFlag{Name: "png", Value: "", Usage: "Also render the scene and its graph to this PNG file"},
				cli.IntFlag{Name: "png-size", Value: 512, Usage: "Width and height of the PNG"},
				cli.IntFlag{Name: "workers", Value: 1, Usage: "Number of vertices swept at once"},
				cli.BoolFlag{Name: "verify", Usage: "Check the graph against the brute force computation"},
				cli.BoolFlag{Name: "split", Usage: "Split crossing loose segments at their crossings first"},
				cli.BoolFlag{Name: "merge", Usage: "Merge overlapping polygons first"},
				cli.BoolFlag{Name: "progress", Usage: "Show a progress bar"},
				cli.BoolFlag{Name: "dump", Usage: "Dump the graph edges on stderr"},
			},
			Action: func(c *cli.Context) error {
				return graphAction(graphOptions{
					in:       c.String("in"),
					out:      c.String("out"),
					png:      c.String("png"),
					pngSize:  c.Int("png-size"),
					workers:  c.Int("workers"),
					verify:   c.Bool("verify"),
					split:    c.Bool("split"),
					merge:    c.Bool("merge"),
					progress: c.Bool("progress"),
					dump:     c.Bool("dump"),
				})
			},
		},
		{
			Name:    "check",
			Aliases: []string{"c"},
			Usage:   "Report obstacles crossing each other in a scene file",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "in", Value: "-", Usage: "Scene file, - reads stdin"},
			},
			Action: func(c *cli.Context) error {
				return checkAction(c.String("in"), os.Stdout)
			},
		},
	}

	return app
}
