package planning

const (
	ReasonBudgetRequired          = "budget value is required."
	ReasonRequiredFieldsMissing   = "required fields missing."
	ReasonEndBeforeStart          = "end date must be after start date."
	ReasonPlannedHoursNotPositive = "planned hours must be greater than zero."
	ReasonBudgetNotPositive       = "budget value must be greater than zero."
	ReasonAdditionalNotPositive   = "additional hours must be greater than zero."
	ReasonAdditionalNegative      = "additional hours must not be negative."
)

// Result is the outcome of a validation gate.
type Result struct {
	OK      bool
	Reasons []string
}

func pass() Result {
	return Result{OK: true}
}

func fail(reason string) Result {
	return Result{OK: false, Reasons: []string{reason}}
}
