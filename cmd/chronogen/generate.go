package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chronogrid/generator"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		lf     levelFlags
		seed   int64
		out    string
		format string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one level and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := generator.New(generator.WithConfig(a.cfg), generator.WithLogger(a.log))
			if err != nil {
				return err
			}
			var level *generator.LevelData
			if cmd.Flags().Changed("seed") {
				level, err = g.GenerateSeeded(seed, lf.width, lf.height, lf.difficulty, lf.options())
			} else {
				level, err = g.Generate(lf.width, lf.height, lf.difficulty, lf.options())
			}
			if err != nil {
				return err
			}

			if out != "" {
				if err := writeLevelFile(out, level); err != nil {
					return err
				}
				a.log.Info("level written", "path", out, "id", level.ID)
			}
			switch format {
			case "text":
				return renderLevel(a.out, level)
			case "json":
				return encodeLevel(a.out, level)
			case "none":
				return nil
			}
			return fmt.Errorf("--format: unknown format %q", format)
		},
	}
	lf.register(cmd)
	cmd.Flags().Int64Var(&seed, "seed", 0, "level seed; reproduces a level from its recorded seed")
	cmd.Flags().StringVar(&out, "out", "", "also write the level as JSON to this file (.zst compresses)")
	cmd.Flags().StringVar(&format, "format", "text", "stdout format: text, json or none")
	return cmd
}
