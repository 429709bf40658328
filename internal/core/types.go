package core

import "strings"

// Identity columns. These are matched literally, trailing colon included.
const (
	FirstNameColumn = "First Name:"
	LastNameColumn  = "Last Name:"
)

// Record is one input row: column name to cell value.
// Cells missing from a short row are absent from the map.
type Record map[string]string

// Attendee is the deduplicated view of one registrant.
type Attendee struct {
	Name           string // "First Last", each part trimmed
	Institution    string // trimmed, may be empty
	AttendanceMode string // trimmed and lowercased, may be empty
}

// Columns records which header supplies each optional field.
// An empty string means the field is unresolved.
type Columns struct {
	Institution string `json:"institution"`
	Attendance  string `json:"attendance"`
}

// Dataset is the fully materialised input of one run.
type Dataset struct {
	Source  string   // input path
	Header  []string // header row as read
	Records []Record // data rows in file order
	Columns Columns  // resolved optional columns
	Bytes   int64    // bytes read from disk (0 for XLSX)
}

// IdentityKey builds the deduplication key for rec.
// It returns false when the first or last name cell is empty or missing.
func IdentityKey(rec Record) (string, bool) {
	first, ok := rec[FirstNameColumn]
	if !ok || first == "" {
		return "", false
	}
	last, ok := rec[LastNameColumn]
	if !ok || last == "" {
		return "", false
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last), true
}

// NewAttendee derives an Attendee from rec using the resolved columns.
// It returns false when rec has no usable identity.
func NewAttendee(rec Record, cols Columns) (Attendee, bool) {
	key, ok := IdentityKey(rec)
	if !ok {
		return Attendee{}, false
	}

	a := Attendee{Name: key}
	if cols.Institution != "" {
		a.Institution = strings.TrimSpace(rec[cols.Institution])
	}
	if cols.Attendance != "" {
		a.AttendanceMode = strings.ToLower(strings.TrimSpace(rec[cols.Attendance]))
	}
	return a, true
}
