package core

// validation.go resolves which header columns feed the optional fields.
//
// Resolution happens once per input, against the header row:
//  1. Each optional field has a priority-ordered alias list
//  2. The first alias present in the header (exact match) is selected
//  3. A field with no matching alias stays unresolved and falls back to defaults

import (
	"context"

	"github.com/JonMunkholm/roster/internal/logging"
)

// InstitutionAliases are the accepted institution headers, highest priority first.
var InstitutionAliases = []string{
	"Institute/Affiliation",
	"Institution/Affiliation",
	"Institution",
	"Affiliation",
	"Institute/Affiliation:",
}

// AttendanceAliases are the accepted attendance-mode headers, highest priority first.
var AttendanceAliases = []string{
	"Attendance Mode",
	"Attendance",
	"Mode",
	"Attendance Mode:",
}

// HeaderSet is the set of column names present in a header row.
type HeaderSet map[string]struct{}

// MakeHeaderSet creates a HeaderSet from a header row.
// Names are kept verbatim; matching is exact.
func MakeHeaderSet(header []string) HeaderSet {
	set := make(HeaderSet, len(header))
	for _, h := range header {
		set[h] = struct{}{}
	}
	return set
}

// Has reports whether name is a column of the header.
func (s HeaderSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// FirstMatch returns the first alias present in the header, or "".
func (s HeaderSet) FirstMatch(aliases []string) string {
	for _, alias := range aliases {
		if s.Has(alias) {
			return alias
		}
	}
	return ""
}

// ResolveColumns picks the institution and attendance-mode columns for header.
func ResolveColumns(header []string) Columns {
	set := MakeHeaderSet(header)
	return Columns{
		Institution: set.FirstMatch(InstitutionAliases),
		Attendance:  set.FirstMatch(AttendanceAliases),
	}
}

// logColumns reports the header and the resolution outcome.
// Unresolved fields are warnings, never errors.
func logColumns(ctx context.Context, header []string, cols Columns) {
	logger := logging.FromContext(ctx)

	logger.Info("available columns", "count", len(header), "columns", header)

	if cols.Institution != "" {
		logger.Info("using institution column", "column", cols.Institution)
	} else {
		logger.Warn("institution column not found, using empty values",
			"tried", InstitutionAliases)
	}

	if cols.Attendance != "" {
		logger.Info("using attendance mode column", "column", cols.Attendance)
	} else {
		logger.Warn("attendance mode column not found, treating all attendees as in-person",
			"tried", AttendanceAliases)
	}

	set := MakeHeaderSet(header)
	for _, required := range []string{FirstNameColumn, LastNameColumn} {
		if !set.Has(required) {
			logger.Warn("identity column missing, every row will be skipped", "column", required)
		}
	}
}
