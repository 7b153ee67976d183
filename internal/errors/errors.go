package errors

import "fmt"

// SchemaError is raised at model construction when the input field list
// does not match the expected schema for the configured mode.
type SchemaError struct {
	Expected []string
	Given    []string
}

func (m *SchemaError) Error() string {
	return fmt.Sprintf("input schema: expected vs given: %v vs %v", m.Expected, m.Given)
}

// InvariantViolation marks a batch whose numeric outputs are internally
// inconsistent. Aborts the evaluation run, there is no recovery.
type InvariantViolation struct {
	ErrorMsg string
}

func (m *InvariantViolation) Error() string {
	return m.ErrorMsg
}

type UnsupportedMetricError struct {
	Metric string
}

func (m *UnsupportedMetricError) Error() string {
	return fmt.Sprintf("unknown metrics '%s'", m.Metric)
}

type ParsingError struct {
	ErrorMsg string
}

func (m *ParsingError) Error() string {
	return m.ErrorMsg
}

type BadRequestError struct {
	ErrorMsg string
}

func (m *BadRequestError) Error() string {
	return m.ErrorMsg
}
