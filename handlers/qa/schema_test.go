package qa

import (
	"testing"

	internalErr "github.com/Meesho/BharatMLStack/qaflow/internal/errors"
	"github.com/stretchr/testify/assert"
)

func fieldNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = "field_" + string(rune('a'+i))
	}
	return names
}

func TestParseInputSchemaBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		docNum  int
		isInfer bool
		wantErr bool
	}{
		{"infer exactly at boundary", 3, 1, true, false},
		{"infer one below boundary", 2, 1, true, true},
		{"infer marco boundary", 11, 5, true, false},
		{"infer marco one below", 10, 5, true, true},
		{"train exactly at boundary", 5, 1, false, false},
		{"train one below boundary", 4, 1, false, true},
		{"train marco boundary", 21, 5, false, false},
		{"train marco one below", 20, 5, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := ParseInputSchema(fieldNames(tt.count), tt.docNum, tt.isInfer)
			if tt.wantErr {
				assert.Nil(t, fields)
				var schemaErr *internalErr.SchemaError
				assert.ErrorAs(t, err, &schemaErr)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, fields)
			}
		})
	}
}

func TestParseInputSchemaFieldOrder(t *testing.T) {
	names := []string{"q_ids", "p1_ids", "p2_ids", "p1_len", "p2_len",
		"p1_start", "p2_start", "p1_end", "p2_end"}

	fields, err := ParseInputSchema(names, 2, false)
	assert.NoError(t, err)
	assert.Equal(t, "q_ids", fields.QuestionIDs)
	assert.Equal(t, []string{"p1_ids", "p2_ids"}, fields.PassageIDs)
	assert.Equal(t, []string{"p1_len", "p2_len"}, fields.PassageLens)
	assert.Equal(t, []string{"p1_start", "p2_start"}, fields.StartLabels)
	assert.Equal(t, []string{"p1_end", "p2_end"}, fields.EndLabels)
}

func TestParseInputSchemaInferSkipsLabels(t *testing.T) {
	fields, err := ParseInputSchema([]string{"q_ids", "p_ids", "para_length"}, 1, true)
	assert.NoError(t, err)
	assert.Empty(t, fields.StartLabels)
	assert.Empty(t, fields.EndLabels)
}
