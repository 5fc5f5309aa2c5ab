package models

// APIError is the error body every failed request returns.
type APIError struct {
	Error     string `json:"error"`
	ErrorCode int    `json:"error_code"`
}

// Error codes shared with the frontend. Codes in the 100s mark uniqueness
// conflicts, codes in the 200s mark authentication and authorization
// failures. -1 covers everything without a more specific code.
const (
	ErrCodeUnknown                  = -1
	ErrCodeAlreadyExistsAttendance  = 100
	ErrCodeAlreadyExistsMemberEmail = 101
	ErrCodeAlreadyExistsGroupMember = 102
	ErrCodePermissionDenied         = 200
	ErrCodeInvalidGoogleAPICode     = 201
	ErrCodeInvalidAuthCredentials   = 202
)
