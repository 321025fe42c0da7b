package interest

type ValidationService struct {
	service Service
}

func NewValidationService(service Service) *ValidationService {
	return &ValidationService{service: service}
}

func (v *ValidationService) Compute(input Input) (Result, error) {
	if input.Principal <= 0 {
		return Result{}, ErrInvalidPrincipal
	}

	if input.Years < 0 {
		return Result{}, ErrInvalidYears
	}

	// A compounding frequency below one would divide the rate by zero.
	if input.CompoundingsPerYear < 1 {
		return Result{}, ErrInvalidCompounding
	}

	return v.service.Compute(input)
}
