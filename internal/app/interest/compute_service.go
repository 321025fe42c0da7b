package interest

import (
	"math"
)

// ComputeService calculates compound interest with the closed-form formula
// principal * (1 + rate/n)^(years*n). It performs no rounding beyond float64
// precision and expects validated input.
type ComputeService struct{}

func NewComputeService() *ComputeService {
	return &ComputeService{}
}

func (c *ComputeService) Compute(input Input) (Result, error) {
	perPeriodRate := input.AnnualRate / float64(input.CompoundingsPerYear)
	totalPeriods := input.Years * input.CompoundingsPerYear

	return Result{
		FinalValue: input.Principal * math.Pow(1+perPeriodRate, float64(totalPeriods)),
	}, nil
}
