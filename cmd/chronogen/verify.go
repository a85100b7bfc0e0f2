package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify FILE...",
		Short: "Replay the stored solution of level files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				level, err := readLevelFile(path)
				if err == nil {
					err = level.Verify()
				}
				if err != nil {
					failed++
					fmt.Fprintf(a.out, "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(a.out, "ok   %s: %d moves, %d pushes\n", path, level.MinMoves, level.BoxesPushed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d levels failed verification", failed, len(args))
			}
			return nil
		},
	}
}
