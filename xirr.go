package cartera

import (
	"errors"
	"math"
)

// ErrNoSolution is reported when the cash-flow history admits no
// money-weighted rate: an empty flow list, flows all of the same sign, or a
// solver that cannot converge to a finite root.
var ErrNoSolution = errors.New("cash flows admit no internal rate")

// cashFlow is a single dated flow, negative for money invested and positive
// for money received. The solver works in float64: exactness matters for the
// ledger, not for an annualized rate.
type cashFlow struct {
	on     Date
	amount float64
}

// flows builds the signed cash-flow timeline straight from the raw records,
// independently of the costing fold: every buy is an outflow, every sell an
// inflow, at quantity times accounting-currency price. Records with an
// unrecognized side contribute nothing.
func (l *Ledger) flows() []cashFlow {
	var fs []cashFlow
	for _, r := range l.Records() {
		switch r.Side {
		case SideBuy:
			fs = append(fs, cashFlow{on: r.Date, amount: -r.Amount().AsFloat()})
		case SideSell:
			fs = append(fs, cashFlow{on: r.Date, amount: r.Amount().AsFloat()})
		}
	}
	return fs
}

// InternalRate computes the annualized money-weighted return (XIRR) of the
// ledger's cash-flow history, closed by a synthetic liquidation of
// terminalValue on the report date. A non-positive terminal value appends no
// terminal flow.
//
// It returns the rate as a Percent, or ErrNoSolution when the flow set is
// degenerate or the solver fails. Callers that want the dashboard behavior
// coerce ErrNoSolution to zero; keeping the two outcomes distinct here lets
// tests tell "zero return" from "solver gave up".
func (l *Ledger) InternalRate(terminalValue Money, on Date) (Percent, error) {
	fs := l.flows()
	if terminalValue.IsPositive() {
		fs = append(fs, cashFlow{on: on, amount: terminalValue.AsFloat()})
	}
	if len(fs) == 0 {
		return 0, ErrNoSolution
	}

	// A root needs at least one flow of each sign.
	hasNeg, hasPos := false, false
	for _, f := range fs {
		if f.amount < 0 {
			hasNeg = true
		}
		if f.amount > 0 {
			hasPos = true
		}
	}
	if !hasNeg || !hasPos {
		return 0, ErrNoSolution
	}

	rate := solveRate(fs)
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, ErrNoSolution
	}
	return Percent(rate * 100), nil
}

// yearFractions converts flow dates into Actual/365 year offsets from the
// earliest flow.
func yearFractions(fs []cashFlow) []float64 {
	base := fs[0].on
	for _, f := range fs[1:] {
		if f.on.Before(base) {
			base = f.on
		}
	}
	years := make([]float64, len(fs))
	for i, f := range fs {
		years[i] = float64(f.on.DaysSince(base)) / 365
	}
	return years
}

// solveRate finds the rate r such that the net present value of the flows,
// discounted at r over each flow's Actual/365 year offset, is zero. It runs
// Newton-Raphson first and falls back to bisection; there is no closed form
// for irregular dates.
func solveRate(fs []cashFlow) float64 {
	const (
		maxIter = 100
		tol     = 1e-7
		minRate = -0.999 // a rate below -99.9% makes the discount base negative
	)

	years := yearFractions(fs)

	// Seed Newton with the simple return, clamped to something sane.
	var invested, received float64
	for _, f := range fs {
		if f.amount < 0 {
			invested -= f.amount
		} else {
			received += f.amount
		}
	}
	rate := 0.1
	if invested > 0 {
		if simple := received/invested - 1; simple > -0.9 && simple < 10 {
			rate = simple
		}
	}

	for iter := 0; iter < maxIter; iter++ {
		var npv, dnpv float64
		for i, f := range fs {
			y := years[i]
			base := 1 + rate
			if base <= 0 {
				rate = minRate
				base = 1 + rate
			}
			discount := math.Pow(base, y)
			if discount == 0 {
				continue
			}
			npv += f.amount / discount
			if y != 0 {
				dnpv -= y * f.amount / (discount * base)
			}
		}

		if math.Abs(npv) < tol {
			return rate
		}
		if dnpv == 0 {
			break
		}

		next := rate - npv/dnpv
		if next < minRate {
			next = minRate
		}
		if next > 100 {
			next = 100
		}
		rate = next
	}

	return bisectRate(fs, years)
}

// bisectRate is the fallback solver: bisection on the NPV sign change over
// a fixed bracket.
func bisectRate(fs []cashFlow, years []float64) float64 {
	const (
		maxIter = 200
		tol     = 1e-6
	)

	npvAt := func(rate float64) float64 {
		var sum float64
		for i, f := range fs {
			base := 1 + rate
			if base <= 0 {
				return math.NaN()
			}
			sum += f.amount / math.Pow(base, years[i])
		}
		return sum
	}

	lo, hi := -0.99, 10.0
	npvLo := npvAt(lo)
	npvHi := npvAt(hi)
	if math.IsNaN(npvLo) || math.IsNaN(npvHi) || npvLo*npvHi > 0 {
		// No sign change in the bracket, no root to converge to.
		return math.NaN()
	}

	for iter := 0; iter < maxIter; iter++ {
		mid := (lo + hi) / 2
		npvMid := npvAt(mid)
		if math.IsNaN(npvMid) {
			return math.NaN()
		}
		if math.Abs(npvMid) < tol {
			return mid
		}
		if npvMid*npvLo < 0 {
			hi = mid
		} else {
			lo = mid
			npvLo = npvMid
		}
	}
	return (lo + hi) / 2
}
