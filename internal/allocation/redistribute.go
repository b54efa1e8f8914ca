package allocation

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Step is the treatment of one category during redistribution.
//
// Capped non-sink categories are clipped to their remaining room for the
// month and the clipped excess moves on. The sink receives its own amount,
// all excess and the rounding remainder.
type Step struct {
	Category Category
	Sink     bool
}

// DefaultSteps redistributes in Order with savings as the sink.
var DefaultSteps = []Step{
	{Category: FixedCosts},
	{Category: Investment},
	{Category: GuiltFreeSpending},
	{Category: Savings, Sink: true},
}

var ErrStepsInvalid = errors.New("redistribution steps must name every category once and end with the only sink")

// Redistributor applies caps to raw amounts.
type Redistributor struct {
	steps []Step
}

// DefaultRedistributor uses DefaultSteps.
var DefaultRedistributor = mustRedistributor(DefaultSteps)

// NewRedistributor returns a Redistributor for the steps.
func NewRedistributor(steps []Step) (Redistributor, error) {
	if len(steps) != len(Order) {
		return Redistributor{}, fmt.Errorf("%w: got %d steps", ErrStepsInvalid, len(steps))
	}

	seen := make(map[Category]bool)
	for i, s := range steps {
		if !s.Category.Valid() || seen[s.Category] {
			return Redistributor{}, fmt.Errorf("%w: %s at position %d", ErrStepsInvalid, s.Category, i)
		}
		seen[s.Category] = true

		if s.Sink != (i == len(steps)-1) {
			return Redistributor{}, fmt.Errorf("%w: sink must be the last step", ErrStepsInvalid)
		}
	}

	return Redistributor{steps: steps}, nil
}

// mustRedistributor is like NewRedistributor but panics on invalid steps.
func mustRedistributor(steps []Step) Redistributor {
	r, err := NewRedistributor(steps)
	if err != nil {
		panic(err)
	}
	return r
}

// Result is the outcome of a redistribution.
type Result struct {
	Amounts     Amounts         // Allocated amounts, summing up to the income
	Clipped     Amounts         // Amount clipped from each capped category
	Excess      decimal.Decimal // Sum of everything clipped, moved to the sink
	Residual    decimal.Decimal // Unallocated remainder moved to the sink
	SinkOverCap decimal.Decimal // Part of the sink's amount that lies above the sink's cap
}

// Apply clips raw against caps, given the amounts already allocated for the
// month in existing, and moves the excess to the sink.
//
// The sink's cap is a soft cap: the sink keeps everything it receives so that
// the allocated amounts always add up to income. The part of its amount that
// takes the month total of the sink above its cap is reported as SinkOverCap.
// A month total exactly at the cap is not over it.
func (r Redistributor) Apply(raw, existing Amounts, caps map[Category]decimal.Decimal, income decimal.Decimal) Result {
	if existing == nil {
		existing = NewAmounts()
	}

	res := Result{
		Amounts:     NewAmounts(),
		Clipped:     NewAmounts(),
		Excess:      decimal.Zero,
		Residual:    decimal.Zero,
		SinkOverCap: decimal.Zero,
	}

	var sink Category
	for _, step := range r.steps {
		c := step.Category
		amount := raw[c]

		if step.Sink {
			sink = c
			res.Amounts[c] = amount.Add(res.Excess)
			continue
		}

		if ceiling, ok := caps[c]; ok {
			room := decimal.Max(decimal.Zero, ceiling.Sub(existing[c]))
			if amount.GreaterThan(room) {
				clipped := amount.Sub(room)
				res.Clipped[c] = clipped
				res.Excess = res.Excess.Add(clipped)
				amount = room
			}
		}

		res.Amounts[c] = amount
	}

	res.Residual = income.Sub(res.Amounts.Total())
	res.Amounts[sink] = res.Amounts[sink].Add(res.Residual)

	if ceiling, ok := caps[sink]; ok {
		over := existing[sink].Add(res.Amounts[sink]).Sub(ceiling)
		if over.IsPositive() {
			res.SinkOverCap = decimal.Min(over, res.Amounts[sink])
		}
	}

	return res
}

// Breakdown is the allocation of a single income event, with the amounts
// already allocated this month taken into account for the caps.
func Breakdown(income decimal.Decimal, existing Amounts, p Policy) Result {
	return DefaultRedistributor.Apply(Calculate(income, p), existing, p.Caps(), income)
}
