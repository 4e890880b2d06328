package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown           ErrorCode = 1
	ErrCodeOperationPanicked ErrorCode = 2

	// Parse and validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidTimeSpec      ErrorCode = 102
	ErrCodeInvalidTimeToken     ErrorCode = 103
	ErrCodeInvalidCredentials   ErrorCode = 104
	ErrCodeMissingParameter     ErrorCode = 105
	ErrCodeInvalidVersion       ErrorCode = 106
	ErrCodeUnknownHandler       ErrorCode = 107
	ErrCodeDuplicateHandler     ErrorCode = 108

	// Remote errors (500-599)
	ErrCodeRemoteRequestFailed ErrorCode = 500
	ErrCodeRemoteUnauthorized  ErrorCode = 501
	ErrCodeRemoteRateLimited   ErrorCode = 502
	ErrCodeRemoteRejected      ErrorCode = 503
	ErrCodeRemoteNotFound      ErrorCode = 504
	ErrCodeOrderFailed         ErrorCode = 505
	ErrCodePositionCloseFailed ErrorCode = 506

	// Protocol errors (600-699)
	ErrCodePaginationExhausted ErrorCode = 600
	ErrCodeCursorRepeated      ErrorCode = 601
	ErrCodeUnexpectedResponse  ErrorCode = 602
	ErrCodeStreamNotConfigured ErrorCode = 603
	ErrCodeStreamClosed        ErrorCode = 604
	ErrCodeStreamAuthFailed    ErrorCode = 605

	// Handler errors (800-899)
	ErrCodeHandlerFailed   ErrorCode = 800
	ErrCodeHandlerPanicked ErrorCode = 801
)

// Category groups error codes into the failure classes the dispatcher and gateway reason about.
type Category string

const (
	CategoryUnknown  Category = "unknown"
	CategoryParse    Category = "parse"
	CategoryRemote   Category = "remote"
	CategoryProtocol Category = "protocol"
	CategoryHandler  Category = "handler"
)

// Category returns the failure class of the code.
func (c ErrorCode) Category() Category {
	switch {
	case c >= 100 && c < 200:
		return CategoryParse
	case c >= 500 && c < 600:
		return CategoryRemote
	case c >= 600 && c < 700:
		return CategoryProtocol
	case c >= 800 && c < 900:
		return CategoryHandler
	default:
		return CategoryUnknown
	}
}
