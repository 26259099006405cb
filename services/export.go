package services

import (
	"fmt"
	"strings"
)

// utf8BOM makes spreadsheet tools pick the right encoding when opening the
// download directly.
const utf8BOM = "\uFEFF"

const exportTimeLayout = "02.01.2006 15:04"

// ExportCSV serializes a form's submissions to a single CSV blob: one header
// row ("Submitted at" plus the field labels in display order), then one row
// per submission, newest first. Read-only and deterministic for a given
// form state.
func (s *SubmissionService) ExportCSV(formID string) (string, error) {
	form, subs, err := s.GetFormSubmissions(formID)
	if err != nil {
		return "", err
	}

	header := make([]string, 0, len(form.Fields)+1)
	header = append(header, "Submitted at")
	for _, field := range form.Fields {
		header = append(header, field.Label)
	}

	lines := make([]string, 0, len(subs)+1)
	lines = append(lines, joinCSVRow(header))

	for _, sub := range subs {
		row := make([]string, 0, len(form.Fields)+1)
		row = append(row, sub.SubmittedAt.Format(exportTimeLayout))
		for _, field := range form.Fields {
			row = append(row, stringifyValue(sub.Data[field.Key]))
		}
		lines = append(lines, joinCSVRow(row))
	}

	return utf8BOM + strings.Join(lines, "\n"), nil
}

func joinCSVRow(cells []string) string {
	escaped := make([]string, len(cells))
	for i, cell := range cells {
		escaped[i] = escapeCSVField(cell)
	}
	return strings.Join(escaped, ",")
}

// escapeCSVField wraps a value in double quotes, doubling inner quotes, but
// only when the value actually needs it.
func escapeCSVField(field string) string {
	if strings.ContainsAny(field, "\",\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}

// stringifyValue renders a stored answer for export: arrays join with a
// comma, absent values become the empty string, everything else is printed
// as-is.
func stringifyValue(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringifyValue(item)
		}
		return strings.Join(parts, ", ")
	case float64:
		// JSON numbers decode as float64; keep integers free of a trailing ".0".
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
