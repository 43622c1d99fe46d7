package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthUsernameTaken          ErrorCode = "AUTH_006"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationMissingColumn ErrorCode = "VALIDATION_004"
)

// Project error codes (PROJECT_*)
const (
	ProjectNotFound  ErrorCode = "PROJECT_001"
	ProjectInvalidID ErrorCode = "PROJECT_002"
	ProjectNoFiles   ErrorCode = "PROJECT_003"
)

// Proposal file error codes (FILE_*)
const (
	FileNotFound        ErrorCode = "FILE_001"
	FileUnsupportedType ErrorCode = "FILE_002"
	FileTooLarge        ErrorCode = "FILE_003"
	FileParseFailed     ErrorCode = "FILE_004"
	FileLineNotFound    ErrorCode = "FILE_005"
)

// Rate population error codes (POPULATE_*)
const (
	PopulateNoMasterRates ErrorCode = "POPULATE_001"
	PopulateFileNotFound  ErrorCode = "POPULATE_002"
	PopulateFailed        ErrorCode = "POPULATE_003"
)

// Export error codes (EXPORT_*)
const (
	ExportNoContent ErrorCode = "EXPORT_001"
	ExportFailed    ErrorCode = "EXPORT_002"
)

// Version error codes (VERSION_*)
const (
	VersionNotFound   ErrorCode = "VERSION_001"
	VersionUnreadable ErrorCode = "VERSION_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid username or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthUsernameTaken:          "Username already taken",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationMissingColumn: "Spreadsheet is missing required columns",

	// Project errors
	ProjectNotFound:  "Project not found",
	ProjectInvalidID: "Invalid project ID format",
	ProjectNoFiles:   "No files found for this project",

	// Proposal file errors
	FileNotFound:        "File not found",
	FileUnsupportedType: "Unsupported file type",
	FileTooLarge:        "Uploaded file exceeds the size limit",
	FileParseFailed:     "Failed to process proposal file",
	FileLineNotFound:    "Line item not found",

	// Rate population errors
	PopulateNoMasterRates: "No master rate table found",
	PopulateFileNotFound:  "Proposal file not found",
	PopulateFailed:        "Failed to populate proposal file rates and categories",

	// Export errors
	ExportNoContent: "No file selected or no content to download",
	ExportFailed:    "Failed to generate export. Please try again",

	// Version errors
	VersionNotFound:   "Version not found",
	VersionUnreadable: "Failed to read version content",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
