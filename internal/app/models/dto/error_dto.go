package dto

// ErrorCode classifies a failure so clients can branch without parsing messages
type ErrorCode string

const (
	ErrorCodeValidationFailed ErrorCode = "VAL_001"
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeInternalServer   ErrorCode = "SRV_001"
	ErrorCodeDatabaseError    ErrorCode = "SRV_002"
)

// Fixed per-endpoint failure messages
const (
	MsgFetchStudentsFailed = "An error occurred while fetching students"
	MsgCreateStudentFailed = "An error occurred while creating student"
	MsgUpdateStudentFailed = "An error occurred while updating student"
	MsgDeleteStudentFailed = "An error occurred while deleting student"
)

// ErrorResponse is the body of every failed API call.
// Error is the endpoint's fixed message; Code and Details are additive.
type ErrorResponse struct {
	Error   string    `json:"error" example:"An error occurred while creating student"`
	Code    ErrorCode `json:"code,omitempty" example:"VAL_001"`
	Field   string    `json:"field,omitempty" example:"expectedSalary"`
	Details string    `json:"details,omitempty" example:"expectedSalary must be a whole number, got \"notanumber\""`
}

// NewErrorResponse creates an error body with the given fixed message and code
func NewErrorResponse(message string, code ErrorCode) *ErrorResponse {
	return &ErrorResponse{Error: message, Code: code}
}

// WithDetails adds a human-readable reason
func (e *ErrorResponse) WithDetails(details string) *ErrorResponse {
	e.Details = details
	return e
}

// WithField names the offending request field
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}
