package errors

// ErrorResponse is the JSON error shape returned by the REST layer.
type ErrorResponse struct {
	Success bool         `json:"success"`
	Error   *ErrorDetail `json:"error"`
}

// ErrorDetail carries the message, hint and any reportable details of a
// failed request.
type ErrorDetail struct {
	Message string         `json:"message"`
	Hint    string         `json:"hint,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// NewErrorResponse converts an error into the wire representation.
func NewErrorResponse(err error) *ErrorResponse {
	if err == nil {
		return &ErrorResponse{Success: true}
	}
	return &ErrorResponse{
		Success: false,
		Error: &ErrorDetail{
			Message: err.Error(),
			Hint:    Hint(err),
			Details: ReportableDetails(err),
		},
	}
}
