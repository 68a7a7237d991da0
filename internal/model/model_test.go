package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hmiyake/picking-list-generator/internal/model"
)

func TestValidationReport(t *testing.T) {
	report := model.ValidationReport{Valid: true}

	report.AddWarning("file name mismatch")
	assert.True(t, report.Valid, "warnings never block")

	report.AddError("bad header")
	assert.False(t, report.Valid)
	assert.Equal(t, []string{"bad header"}, report.Errors)
	assert.Equal(t, []string{"file name mismatch"}, report.Warnings)
}

// Empty tables still expose their fixed schema, so every result sheet always
// carries a header row.
func TestEmptyTablesKeepSchema(t *testing.T) {
	assert.Len(t, model.CMReferenceTable{}.Header(), 9)
	assert.Len(t, model.APartsReferenceTable{}.Header(), 8)
	assert.Len(t, model.CMPickingTable{}.Header(), 11)
	assert.Len(t, model.APartsPickingTable{}.Header(), 11)
	assert.Len(t, model.APartsValidationTable{}.Header(), 8)

	assert.Empty(t, model.CMPickingTable{}.Records())
}

// Records stay column-aligned with the header of each table.
func TestRecordsMatchHeaderWidth(t *testing.T) {
	cm := model.CMPickingTable{{No: 1, PartNumber: "CM123456"}}
	assert.Len(t, cm.Records()[0], len(cm.Header()))

	a := model.APartsPickingTable{{No: 1, PartNumber: "A123456"}}
	assert.Len(t, a.Records()[0], len(a.Header()))

	v := model.APartsValidationTable{{No: 1, PartNumber: "A123456"}}
	assert.Len(t, v.Records()[0], len(v.Header()))

	cmRef := model.CMReferenceTable{{No: 1}}
	assert.Len(t, cmRef.Records()[0], len(cmRef.Header()))

	aRef := model.APartsReferenceTable{{No: 1}}
	assert.Len(t, aRef.Records()[0], len(aRef.Header()))
}
