package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal      ErrorCode = "COMMON_001"
	ErrCodeBadRequest    ErrorCode = "COMMON_002"
	ErrCodeNotFound      ErrorCode = "COMMON_003"
	ErrCodeTimeout       ErrorCode = "COMMON_004"
	ErrCodeValidation    ErrorCode = "COMMON_005"
	ErrCodeSerialization ErrorCode = "COMMON_006"
	ErrCodeCacheError    ErrorCode = "COMMON_007"
	ErrCodeUnavailable   ErrorCode = "COMMON_008"

	CodeOK      ErrorCode = "OK"
	CodeUnknown ErrorCode = "UNKNOWN"
)

// Breed Module Error Codes
const (
	ErrCodeBreedUnknown     ErrorCode = "BRD_001"
	ErrCodeBreedDataInvalid ErrorCode = "BRD_002"
)

// Genetics Module Error Codes
const (
	ErrCodeGeneticProfileInvalid  ErrorCode = "GEN_001"
	ErrCodeGeneticNoMarkers       ErrorCode = "GEN_002"
	ErrCodeGeneticProviderUnknown ErrorCode = "GEN_003"
	ErrCodeGeneticReportExpired   ErrorCode = "GEN_004"
)

// Matching Module Error Codes
const (
	ErrCodeSelfMatch      ErrorCode = "MATCH_001"
	ErrCodeMissingProfile ErrorCode = "MATCH_002"
)

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:      "internal error",
	ErrCodeBadRequest:    "bad request",
	ErrCodeNotFound:      "resource not found",
	ErrCodeTimeout:       "operation timeout",
	ErrCodeValidation:    "validation failed",
	ErrCodeSerialization: "serialization failed",
	ErrCodeCacheError:    "cache error",
	ErrCodeUnavailable:   "service unavailable",

	ErrCodeBreedUnknown:     "unknown breed",
	ErrCodeBreedDataInvalid: "invalid breed taxonomy data",

	ErrCodeGeneticProfileInvalid:  "invalid genetic profile",
	ErrCodeGeneticNoMarkers:       "no SNP markers in raw data",
	ErrCodeGeneticProviderUnknown: "unknown genetic test provider",
	ErrCodeGeneticReportExpired:   "genetic compatibility report expired",

	ErrCodeSelfMatch:      "cannot match a pet with itself",
	ErrCodeMissingProfile: "pet profile is missing",
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
