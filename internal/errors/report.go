package errors

import (
	"encoding/json"
	"errors"

	"github.com/rjooske/match-transformer/internal/schema"
)

// Report is the canonical structured error type for matchc. All error
// builders return *Report, which can be wrapped as a ReportError so it
// survives errors.As() unwrapping.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report as an error.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport attempts to extract a Report from an error chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as a ReportError.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a Report for the given code and message, with optional
// structured data.
func New(code, message string, data map[string]any) *Report {
	info, _ := GetErrorInfo(code)
	return &Report{
		Schema:  schema.ErrorV1,
		Code:    code,
		Phase:   info.Phase,
		Message: message,
		Data:    data,
	}
}

// ToJSON converts a Report to deterministic JSON.
func (r *Report) ToJSON(compact bool) (string, error) {
	var data []byte
	var err error
	if compact {
		data, err = json.Marshal(r)
	} else {
		data, err = json.MarshalIndent(r, "", "  ")
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
