package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 11000-11999: Validation errors
// 13000-13999: Submission & Execution errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalServerError ErrorCode = 10001
	InvalidParams       ErrorCode = 10002
	NotFound            ErrorCode = 10003
	ServiceUnavailable  ErrorCode = 10007
	Timeout             ErrorCode = 10008

	// ========== Validation Errors (11000-11999) ==========

	ValidationFailed   ErrorCode = 11000
	InvalidFormat      ErrorCode = 11001
	InvalidValue       ErrorCode = 11002
	RequiredFieldEmpty ErrorCode = 11003

	// ========== Submission & Execution Errors (13000-13999) ==========

	// Submission (13000-13099)
	NoCodeProvided       ErrorCode = 13000
	StubCode             ErrorCode = 13001
	CodeTooLarge         ErrorCode = 13002
	LanguageNotSupported ErrorCode = 13003

	// Execution (13100-13199)
	ExecutorSystemError ErrorCode = 13100
	CompilationError    ErrorCode = 13102
	RuntimeError        ErrorCode = 13103
	TimeLimitExceeded   ErrorCode = 13104
	EnvironmentError    ErrorCode = 13105
	OutputParseError    ErrorCode = 13106
)

// errorMessages maps error codes to their default English messages
var errorMessages = map[ErrorCode]string{
	// System & Common
	Success:             "Success",
	InternalServerError: "Internal server error",
	InvalidParams:       "Invalid parameters",
	NotFound:            "Resource not found",
	ServiceUnavailable:  "Service temporarily unavailable",
	Timeout:             "Request timeout",

	// Validation
	ValidationFailed:   "Validation failed",
	InvalidFormat:      "Invalid format",
	InvalidValue:       "Invalid value",
	RequiredFieldEmpty: "Required field is empty",

	// Submission
	NoCodeProvided:       "No code provided",
	StubCode:             "Function not implemented",
	CodeTooLarge:         "Code is too large",
	LanguageNotSupported: "Programming language not supported",

	// Execution
	ExecutorSystemError: "Executor system error",
	CompilationError:    "Compilation error",
	RuntimeError:        "Runtime error",
	TimeLimitExceeded:   "Time limit exceeded",
	EnvironmentError:    "Required compiler or runtime is not installed",
	OutputParseError:    "Failed to parse execution output",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "Unknown error"
}

// HTTPStatus returns the recommended HTTP status code for the error code
func (c ErrorCode) HTTPStatus() int {
	switch {
	case c == Success:
		return 200
	case c == NotFound:
		return 404
	case c == Timeout, c == TimeLimitExceeded:
		return 408
	case c == ServiceUnavailable, c == EnvironmentError:
		return 503
	case c == InvalidParams, c >= 11000 && c < 12000:
		return 400
	case c >= 13000 && c < 13100:
		return 400
	case c == InternalServerError, c == ExecutorSystemError, c == OutputParseError:
		return 500
	default:
		return 200
	}
}
