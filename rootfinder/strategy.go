// SPDX-License-Identifier: MIT

package rootfinder

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/katalvlaran/realroots/interval"
	"github.com/katalvlaran/realroots/poly"
	"github.com/katalvlaran/realroots/sturm"
)

// Context is the view of a Finder that splitting strategies operate on.
// Strategies never hold state of their own; everything they produce goes
// back through AddRoot, AddIsolated and AddQueue.
type Context interface {
	// Polynomial returns the current working polynomial (square-free, possibly deflated).
	Polynomial() poly.Polynomial
	// Derivative returns the derivative of Polynomial.
	Derivative() poly.Polynomial
	// Sturm returns the Sturm sequence of Polynomial.
	Sturm() *sturm.Sequence
	// AddRoot records an exact rational root.
	AddRoot(x *big.Rat)
	// AddIsolated records an interval holding exactly one root.
	AddIsolated(iv interval.Interval)
	// AddQueue schedules an interval for later classification.
	AddQueue(iv interval.Interval, s Strategy) error
	// RealApproximations returns float approximations of the real roots of
	// Polynomial computed with the numerical strategy s (EigenValue or Aberth).
	RealApproximations(s Strategy) ([]float64, error)
	// GridCells returns the cell count for the Grid strategy.
	GridCells() int
	// Logger returns the debug logger.
	Logger() *zap.Logger
}

// splitFunc handles an open bounded interval known to hold at least two roots.
type splitFunc func(iv interval.Interval, ctx Context)

// strategyTable dispatches a Strategy to its split function.
var strategyTable = [numStrategies]splitFunc{
	Generic:      splitGeneric,
	BinarySample: splitBinarySample,
	BinaryNewton: splitBinaryNewton,
	Grid:         splitGrid,
	EigenValue:   splitNumeric(EigenValue),
	Aberth:       splitNumeric(Aberth),
}

// Split applies strategy s to iv. Exposed so custom drivers can reuse the
// built-in strategies on their own Context.
func Split(s Strategy, iv interval.Interval, ctx Context) error {
	if !s.Valid() {
		return ErrUnknownStrategy
	}
	strategyTable[s](iv, ctx)

	return nil
}
