package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	observable "github.com/heplab/observable"
)

func newListCmd() *cobra.Command {
	var defines []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered observable entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg := observable.NewObservables()
			for _, path := range defines {
				if err := observable.LoadObservables(path, reg); err != nil {
					return err
				}
			}

			w := cmd.OutOrStdout()
			for _, name := range reg.Names() {
				entry := reg.Entry(name)
				fmt.Fprintln(w, name)
				if latex := entry.Latex(); latex != "" {
					fmt.Fprintf(w, "    latex: %s\n", latex)
				}
				fmt.Fprintf(w, "    unit: %s\n", entry.Unit())
				if kv := entry.KinematicVariables(); len(kv) > 0 {
					fmt.Fprintf(w, "    kinematics: %s\n", strings.Join(kv, ", "))
				}
				entry.Describe(w)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&defines, "define", nil, "YAML observable definition file (any number of times)")
	return cmd
}
