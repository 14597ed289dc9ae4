package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	observable "github.com/heplab/observable"
)

func newEvalCmd() *cobra.Command {
	var (
		defines []string
		with    []string
		kin     []string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "eval EXPR...",
		Short: "Parse, bind, and evaluate observable expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := observable.NewObservables()
			for _, path := range defines {
				if err := observable.LoadObservables(path, reg); err != nil {
					return err
				}
				slog.Debug("loaded definitions", "path", path)
			}

			p := observable.NewParameters()
			for _, d := range with {
				name, value, err := splitDefinition(d)
				if err != nil {
					return err
				}
				qn, err := observable.NewQualifiedName(name)
				if err != nil {
					return err
				}
				p.Declare(qn, value)
			}

			k := observable.NewKinematics()
			for _, d := range kin {
				name, value, err := splitDefinition(d)
				if err != nil {
					return err
				}
				k.Declare(name, value)
			}

			for i, src := range args {
				name := observable.MustQualifiedName("cli::expr" + strconv.Itoa(i+1))
				if err := reg.Insert(name, "", observable.Options{}, src); err != nil {
					return err
				}
				obs, err := reg.Make(name, p, k, observable.Options{})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), format+"\n", obs.Evaluate())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&defines, "define", nil, "YAML observable definition file (any number of times)")
	cmd.Flags().StringArrayVar(&with, "with", nil, "name=value parameter definition (any number of times)")
	cmd.Flags().StringArrayVar(&kin, "kin", nil, "name=value kinematic variable (any number of times)")
	cmd.Flags().StringVar(&format, "fmt", "%g", "result formatting string")
	return cmd
}

func splitDefinition(s string) (string, float64, error) {
	d := strings.SplitN(s, "=", 2)
	if len(d) != 2 {
		return "", 0, errors.Errorf(`definitions must be "name=value", not %q`, s)
	}
	name := strings.TrimSpace(d[0])
	value, err := strconv.ParseFloat(strings.TrimSpace(d[1]), 64)
	if err != nil {
		return "", 0, errors.Wrapf(err, "parsing value in %q", s)
	}
	return name, value, nil
}
