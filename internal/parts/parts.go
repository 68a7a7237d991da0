// =============================================================================
// Picking List Generator - Part Number Classification
// =============================================================================
//
// Part numbers are classified by fixed, domain-specific patterns. The screen
// runs in two steps with a deliberate ordering:
//
//   1. Validity screen: trimmed non-empty, length 6-20, and not an excluded
//      prefix (FRAME/SET/KIT). This runs BEFORE classification, so a short
//      candidate like "A1234" is rejected even though it looks like an
//      A-parts number.
//   2. Classification: CM patterns take precedence over A-parts patterns;
//      anything else is Other.
//
// The patterns are a fixed convention of the source documents, not
// configurable business rules.
//
// =============================================================================

package parts

import (
	"regexp"
	"strings"
)

// Type is the classification of a part number.
type Type int

const (
	TypeOther Type = iota
	TypeCM
	TypeAParts
	TypeFrame
)

// String returns the classification name.
func (t Type) String() string {
	switch t {
	case TypeCM:
		return "CM"
	case TypeAParts:
		return "A_PARTS"
	case TypeFrame:
		return "FRAME"
	default:
		return "OTHER"
	}
}

// Part number length bounds for the validity screen.
const (
	minPartNumberLength = 6
	maxPartNumberLength = 20
)

var (
	cmPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^CM\d{6}`), // CM123456
		regexp.MustCompile(`(?i)^C-\d{6}`), // C-123456
	}

	aPartsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^A\d{6}`),   // A123456
		regexp.MustCompile(`(?i)^AP-\d{6}`), // AP-123456
	}

	excludePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^FRAME`),
		regexp.MustCompile(`(?i)^SET`),
		regexp.MustCompile(`(?i)^KIT`),
	}

	framePattern = regexp.MustCompile(`(?i)^FRAME`)
)

// IsValidPartNumber reports whether a part-number cell passes the validity
// screen. Rows that fail are skipped silently during resolution.
func IsValidPartNumber(partNumber string) bool {
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return false
	}
	if len(partNumber) < minPartNumberLength || len(partNumber) > maxPartNumberLength {
		return false
	}
	for _, p := range excludePatterns {
		if p.MatchString(partNumber) {
			return false
		}
	}
	return true
}

// Identify classifies a part number. CM patterns are checked before A-parts
// patterns; frame-prefixed numbers classify as Frame (normally already
// removed by the validity screen).
func Identify(partNumber string) Type {
	partNumber = strings.TrimSpace(partNumber)
	if partNumber == "" {
		return TypeOther
	}
	for _, p := range cmPatterns {
		if p.MatchString(partNumber) {
			return TypeCM
		}
	}
	for _, p := range aPartsPatterns {
		if p.MatchString(partNumber) {
			return TypeAParts
		}
	}
	if framePattern.MatchString(partNumber) {
		return TypeFrame
	}
	return TypeOther
}

// RequiredBoxes returns the minimum whole boxes needed to cover quantity.
// A non-positive quantity-per-box yields 0.
func RequiredBoxes(quantity, quantityPerBox int) int {
	if quantityPerBox <= 0 {
		return 0
	}
	return (quantity + quantityPerBox - 1) / quantityPerBox
}
