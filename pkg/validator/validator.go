package validator

// Validator instance
type Validator struct {
	*StructValidator
}

// NewValidator instance
func NewValidator() *Validator {
	return &Validator{
		StructValidator: NewStructValidator(),
	}
}
