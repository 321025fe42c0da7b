package interest

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeService(t *testing.T) {
	service := NewComputeService()

	tests := []struct {
		name       string
		input      Input
		assertFunc func(*testing.T, Result, error)
	}{
		{
			name: "monthly compounding over a decade",
			input: Input{
				Principal:           1000,
				AnnualRate:          0.05,
				Years:               10,
				CompoundingsPerYear: 12,
			},
			assertFunc: func(t *testing.T, result Result, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1647.01, result.FinalValue, 0.01)
			},
		},
		{
			name: "annual compounding for one year",
			input: Input{
				Principal:           500,
				AnnualRate:          0.10,
				Years:               1,
				CompoundingsPerYear: 1,
			},
			assertFunc: func(t *testing.T, result Result, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 550.0, result.FinalValue, 1e-9)
			},
		},
		{
			name: "zero duration returns principal",
			input: Input{
				Principal:           1234.56,
				AnnualRate:          0.07,
				Years:               0,
				CompoundingsPerYear: 4,
			},
			assertFunc: func(t *testing.T, result Result, err error) {
				assert.NoError(t, err)
				assert.EqualValues(t, 1234.56, result.FinalValue)
			},
		},
		{
			name: "zero rate returns principal",
			input: Input{
				Principal:           1234.56,
				AnnualRate:          0,
				Years:               30,
				CompoundingsPerYear: 365,
			},
			assertFunc: func(t *testing.T, result Result, err error) {
				assert.NoError(t, err)
				assert.InDelta(t, 1234.56, result.FinalValue, 1e-9)
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := service.Compute(test.input)
			test.assertFunc(t, result, err)
		})
	}
}

func Test_ComputeService_MatchesClosedForm(t *testing.T) {
	service := NewComputeService()

	principals := []float64{1, 250.75, 10000}
	rates := []float64{0.01, 0.05, 0.2}
	years := []int{1, 5, 40}
	compoundings := []int{1, 4, 12, 365}

	for _, principal := range principals {
		for _, rate := range rates {
			for _, duration := range years {
				for _, n := range compoundings {
					result, err := service.Compute(Input{
						Principal:           principal,
						AnnualRate:          rate,
						Years:               duration,
						CompoundingsPerYear: n,
					})
					require.NoError(t, err)

					expected := principal * math.Pow(1+rate/float64(n), float64(duration*n))
					assert.InEpsilon(t, expected, result.FinalValue, 1e-9)
				}
			}
		}
	}
}

func Test_ComputeService_MoreFrequentCompoundingGrowsFaster(t *testing.T) {
	service := NewComputeService()

	input := Input{
		Principal:  1000,
		AnnualRate: 0.05,
		Years:      10,
	}

	previous := 0.0
	for _, n := range []int{1, 2, 4, 12, 52, 365} {
		input.CompoundingsPerYear = n

		result, err := service.Compute(input)
		require.NoError(t, err)

		assert.Greater(t, result.FinalValue, previous)
		previous = result.FinalValue
	}

	// Bounded above by continuous compounding.
	assert.Less(t, previous, input.Principal*math.Exp(input.AnnualRate*float64(input.Years)))
}
