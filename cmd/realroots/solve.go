// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/ran"
	"github.com/katalvlaran/realroots/rootfinder"
)

// rootRow is one isolated root as rendered.
type rootRow struct {
	Index    int    `yaml:"index"`
	Value    string `yaml:"value"`
	Exact    bool   `yaml:"exact"`
	Interval string `yaml:"interval"`
}

// result is the outcome for one polynomial.
type result struct {
	Name       string    `yaml:"name,omitempty"`
	Polynomial string    `yaml:"polynomial"`
	Interval   string    `yaml:"interval"`
	Roots      []rootRow `yaml:"roots"`
	Processed  int       `yaml:"processed"`
	Error      string    `yaml:"error,omitempty"`
}

// isolate drains a finder for p on iv. The step budget slices the work so
// that ctx cancellation is observed between slices.
func isolate(ctx context.Context, p poly.Polynomial, iv interval.Interval, opts []rootfinder.Option, digits int) (result, error) {
	res := result{Polynomial: p.String(), Interval: iv.String(), Roots: []rootRow{}}
	f, err := rootfinder.New(p, append(opts[:len(opts):len(opts)], rootfinder.WithInterval(iv))...)
	if err != nil {
		return res, err
	}
	for {
		r, err := f.Next()
		switch {
		case errors.Is(err, rootfinder.Done):
			res.Processed = f.Stats().Processed
			return res, nil
		case errors.Is(err, rootfinder.ErrBudgetExceeded):
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, fmt.Errorf("isolate %s: %w", p, ctxErr)
			}
			continue
		case err != nil:
			return res, err
		}
		res.Roots = append(res.Roots, row(len(res.Roots)+1, r, digits))
	}
}

// guardDigits is the extra precision refined beyond the printed digits.
const guardDigits = 6

// row renders r with a decimal value rounded to digits places.
func row(idx int, r *ran.Number, digits int) rootRow {
	out := rootRow{Index: idx, Exact: r.IsExact(), Interval: r.Interval().String()}
	if r.IsExact() {
		out.Value = r.Value().FloatString(digits)
		return out
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits+guardDigits)), nil)
	eps := new(big.Rat).SetFrac(big.NewInt(1), scale)
	c := r.Clone()
	c.Refine(eps)
	if c.IsExact() {
		out.Value = c.Value().FloatString(digits)
	} else {
		out.Value = c.Interval().Midpoint().FloatString(digits)
	}

	return out
}
