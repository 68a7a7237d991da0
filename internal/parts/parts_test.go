package parts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmiyake/picking-list-generator/internal/parts"
)

// =============================================================================
// VALIDITY SCREEN
// =============================================================================

func TestIsValidPartNumber(t *testing.T) {
	tests := []struct {
		name       string
		partNumber string
		want       bool
	}{
		{"cm number", "CM123456", true},
		{"a number", "A123456", true},
		{"dashed cm", "C-123456", true},
		{"dashed a", "AP-123456", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
		{"too short", "CM123", false},
		{"length five rejected before classification", "A1234", false},
		{"minimum length six", "A12345", true},
		{"maximum length twenty", "A1234567890123456789", true},
		{"over maximum length", "A12345678901234567890", false},
		{"frame excluded", "FRAME12345", false},
		{"frame excluded lowercase", "frame12345", false},
		{"set excluded", "SET123456", false},
		{"kit excluded", "KIT123456", false},
		{"surrounding whitespace trimmed", "  CM123456  ", true},
		{"other numbers still pass the screen", "XY1234567", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parts.IsValidPartNumber(tt.partNumber))
		})
	}
}

// =============================================================================
// CLASSIFICATION
// =============================================================================

func TestIdentify(t *testing.T) {
	tests := []struct {
		name       string
		partNumber string
		want       parts.Type
	}{
		{"cm prefix", "CM123456", parts.TypeCM},
		{"cm dashed", "C-123456", parts.TypeCM},
		{"cm lowercase", "cm123456", parts.TypeCM},
		{"cm with trailing suffix", "CM123456-B", parts.TypeCM},
		{"a prefix", "A123456", parts.TypeAParts},
		{"ap dashed", "AP-123456", parts.TypeAParts},
		{"a lowercase", "a123456", parts.TypeAParts},
		{"frame", "FRAME12345", parts.TypeFrame},
		{"other", "XY123456", parts.TypeOther},
		{"empty", "", parts.TypeOther},
		{"too few digits", "CM12345", parts.TypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parts.Identify(tt.partNumber))
		})
	}
}

// CM patterns are checked before A-parts patterns. "C-123456" must never be
// classified as A-parts even though downstream patterns also start matching
// at the first character.
func TestIdentifyPrecedence(t *testing.T) {
	assert.Equal(t, parts.TypeCM, parts.Identify("C-123456"))
	assert.Equal(t, parts.TypeCM, parts.Identify("CM123456"))
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "CM", parts.TypeCM.String())
	assert.Equal(t, "A_PARTS", parts.TypeAParts.String())
	assert.Equal(t, "FRAME", parts.TypeFrame.String())
	assert.Equal(t, "OTHER", parts.TypeOther.String())
}

// =============================================================================
// BOX ARITHMETIC
// =============================================================================

func TestRequiredBoxes(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		perBox   int
		want     int
	}{
		{"exact division", 10, 5, 2},
		{"remainder rounds up", 11, 5, 3},
		{"single item", 1, 10, 1},
		{"zero quantity", 0, 5, 0},
		{"zero per box", 10, 0, 0},
		{"negative per box", 10, -3, 0},
		{"one per box", 7, 1, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parts.RequiredBoxes(tt.quantity, tt.perBox))
		})
	}
}

// For any positive quantity-per-box, the boxes must always cover the
// quantity.
func TestRequiredBoxesCoversQuantity(t *testing.T) {
	for quantity := 0; quantity <= 50; quantity++ {
		for perBox := 1; perBox <= 12; perBox++ {
			boxes := parts.RequiredBoxes(quantity, perBox)
			assert.GreaterOrEqual(t, boxes*perBox, quantity,
				"quantity=%d perBox=%d", quantity, perBox)
			if quantity > 0 {
				assert.Less(t, (boxes-1)*perBox, quantity,
					"quantity=%d perBox=%d overshoots", quantity, perBox)
			}
		}
	}
}
