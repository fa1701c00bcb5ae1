package validation

import (
	"regexp"
	"strings"

	"scamshield/internal/models"
)

// nonDigitPattern matches every character that is not an ASCII digit.
var nonDigitPattern = regexp.MustCompile(`[^0-9]`)

// NormalizeDigits strips all non-digit characters from a string. Used for
// format-insensitive phone matching ("010-1234-5678" == "01012345678").
func NormalizeDigits(s string) string {
	return nonDigitPattern.ReplaceAllString(s, "")
}

// ValidatePhone normalizes a phone number to digits only and reports whether
// anything usable remains.
func ValidatePhone(phone string) (string, bool) {
	normalized := NormalizeDigits(phone)
	return normalized, normalized != ""
}

// ValidReportType checks that a report type is one of the known source types.
func ValidReportType(reportType string) bool {
	return reportType == models.SourceTypePhone || reportType == models.SourceTypeAccount
}

// NormalizeReportValue applies the storage normalization policy for a reported
// value: phone values are stored digits-only so differently formatted reports
// of the same number share one counter; account values are stored verbatim.
func NormalizeReportValue(reportType, value string) string {
	if reportType == models.SourceTypePhone {
		return NormalizeDigits(value)
	}
	return strings.TrimSpace(value)
}
