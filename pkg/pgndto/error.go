package pgndto

// ErrorView is a classified error ready for display.
type ErrorView struct {
	Kind    string
	Message string
	// Retryable is true when the user can simply try another input.
	Retryable bool
}

func (e ErrorView) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Kind != "" {
		return e.Kind
	}
	return "recorder error"
}
