package main

import (
	"fmt"

	"github.com/spf13/cobra"

	observable "github.com/heplab/observable"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate observable definition files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failed error
			for _, path := range args {
				reg := observable.NewObservables()
				if err := observable.LoadObservables(path, reg); err != nil {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", path, err)
					failed = err
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d entries)\n", path, len(reg.Names()))
			}
			return failed
		},
	}
}
