package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chronogrid/generator"
)

// app holds state shared by every subcommand after flag parsing.
type app struct {
	out io.Writer

	configPath string
	logLevel   string
	logFormat  string

	cfg generator.Config
	log *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, cfg: generator.DefaultConfig()}

	root := &cobra.Command{
		Use:           "chronogen",
		Short:         "Generate solvable dual-timeline puzzle levels",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML tuning file merged over the defaults")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")

	root.AddCommand(newGenerateCmd(a), newBatchCmd(a), newVerifyCmd(a))
	return root
}

// setup builds the logger and loads the config file, if any.
func (a *app) setup(logOut io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(a.logFormat) {
	case "text":
		a.log = slog.New(slog.NewTextHandler(logOut, opts))
	case "json":
		a.log = slog.New(slog.NewJSONHandler(logOut, opts))
	default:
		return fmt.Errorf("--log-format: unknown format %q", a.logFormat)
	}

	if a.configPath != "" {
		cfg, err := generator.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log.Debug("config loaded", "path", a.configPath)
	}
	return nil
}

// levelFlags are the per-level knobs shared by generate and batch.
type levelFlags struct {
	width, height, difficulty int
	keys, levers, obstacles   bool
}

func (f *levelFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.width, "width", 10, fmt.Sprintf("grid width (%d-%d)", generator.MinSide, generator.MaxSide))
	fs.IntVar(&f.height, "height", 10, fmt.Sprintf("grid height (%d-%d)", generator.MinSide, generator.MaxSide))
	fs.IntVar(&f.difficulty, "difficulty", 3, fmt.Sprintf("difficulty (0-%d)", generator.MaxDifficulty))
	fs.BoolVar(&f.keys, "keys", true, "enable key, chest and door")
	fs.BoolVar(&f.levers, "levers", false, "enable lever and lever gates")
	fs.BoolVar(&f.obstacles, "obstacles", false, "enable pushable obstacles")
}

func (f *levelFlags) options() generator.Options {
	return generator.Options{EnableKeys: f.keys, EnableLevers: f.levers, EnableObstacles: f.obstacles}
}
