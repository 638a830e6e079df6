package shared

// APIError error with http status code attached
type APIError struct {
	Code    int
	Message string
}

// NewAPIError constructor
func NewAPIError(code int, message string) *APIError {
	return &APIError{Code: code, Message: message}
}

func (a *APIError) Error() string {
	return a.Message
}
