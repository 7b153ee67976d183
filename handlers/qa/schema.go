package qa

import (
	"github.com/Meesho/BharatMLStack/qaflow/internal/errors"
)

// Field order is positional and fixed: question ids, docNum passage ids,
// docNum passage lengths, then (training only) docNum start labels and
// docNum end labels.
func ParseInputSchema(fieldNames []string, docNum int, isInfer bool) (*InputFields, error) {
	if isInfer {
		if len(fieldNames) < 1+2*docNum {
			return nil, &errors.SchemaError{
				Expected: []string{"q_ids", "p_ids", "para_length", "[start_label, end_label, ...]"},
				Given:    fieldNames,
			}
		}
	} else {
		if len(fieldNames) < 1+4*docNum {
			return nil, &errors.SchemaError{
				Expected: []string{"q_ids", "p_ids", "para_length", "start_label", "end_label", "..."},
				Given:    fieldNames,
			}
		}
	}

	fields := &InputFields{
		QuestionIDs: fieldNames[0],
		PassageIDs:  fieldNames[1 : 1+docNum],
		PassageLens: fieldNames[1+docNum : 1+2*docNum],
	}
	if !isInfer {
		fields.StartLabels = fieldNames[1+2*docNum : 1+3*docNum]
		fields.EndLabels = fieldNames[1+3*docNum : 1+4*docNum]
	}
	return fields, nil
}
