package interest

// Input holds the four parameters of a single account calculation.
type Input struct {
	Principal           float64
	AnnualRate          float64
	Years               int
	CompoundingsPerYear int
}

// Result holds the outcome of a single account calculation.
type Result struct {
	FinalValue float64
}

// Service defines a contract for computing account balances.
type Service interface {
	Compute(input Input) (Result, error)
}
