// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/realroots/internal/config"
	"github.com/katalvlaran/realroots/interval"
)

// errBadBound indicates an interval bound that is neither rational nor infinite.
var errBadBound = errors.New("bound must be a rational number or ±inf")

// searchFlags select the search interval.
type searchFlags struct {
	left, right string
	closed      bool
}

func (s *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.left, "left", "-inf", "left bound (rational, e.g. -3/2, or -inf)")
	cmd.Flags().StringVar(&s.right, "right", "inf", "right bound (rational or inf)")
	cmd.Flags().BoolVar(&s.closed, "closed", false, "include finite bounds in the search")
}

func (s *searchFlags) interval() (interval.Interval, error) {
	return buildInterval(s.left, s.right, s.closed)
}

// buildInterval parses bounds; infinite sides are always open.
func buildInterval(left, right string, closed bool) (interval.Interval, error) {
	l, err := parseBound(left)
	if err != nil {
		return interval.Interval{}, err
	}
	r, err := parseBound(right)
	if err != nil {
		return interval.Interval{}, err
	}

	return interval.New(l, r, !closed, !closed)
}

// parseBound reads a rational bound; "", "inf", "+inf" and "-inf" yield nil.
func parseBound(s string) (*big.Rat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "inf", "+inf", "-inf", "infinity", "-infinity":
		return nil, nil
	}
	r, ok := new(big.Rat).SetString(strings.TrimSpace(s))
	if !ok {
		return nil, fmt.Errorf("%q: %w", s, errBadBound)
	}

	return r, nil
}

// finderFlags override configuration values for one invocation.
type finderFlags struct {
	strategy  string
	noTrivial bool
	noDeflate bool
	budget    int
	gridCells int
	format    string
	digits    int
}

func (f *finderFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.strategy, "strategy", "s", "", "splitting strategy (see 'realroots strategies')")
	fl.BoolVar(&f.noTrivial, "no-trivial", false, "disable the closed-form solver for degree <= 2")
	fl.BoolVar(&f.noDeflate, "no-deflation", false, "do not divide out exact roots")
	fl.IntVar(&f.budget, "budget", 0, "queue items processed per step")
	fl.IntVar(&f.gridCells, "grid-cells", 0, "cells per split for the grid strategy")
	fl.StringVarP(&f.format, "format", "o", "", "output format: table, yaml or plain")
	fl.IntVar(&f.digits, "digits", 0, "decimal digits of root values")
}

// apply copies the flags that were set onto cfg and revalidates it.
func (f *finderFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	fl := cmd.Flags()
	if fl.Changed("strategy") {
		cfg.Strategy = f.strategy
	}
	if fl.Changed("no-trivial") {
		cfg.TrivialSolver = !f.noTrivial
	}
	if fl.Changed("no-deflation") {
		cfg.Deflation = !f.noDeflate
	}
	if fl.Changed("budget") {
		cfg.StepBudget = f.budget
	}
	if fl.Changed("grid-cells") {
		cfg.GridCells = f.gridCells
	}
	if fl.Changed("format") {
		cfg.Output.Format = f.format
	}
	if fl.Changed("digits") {
		cfg.Output.Digits = f.digits
	}

	return cfg.Validate()
}
