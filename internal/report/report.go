// Package report renders the participants page.
//
// A [Report] is built once per run from the two listings, rendered through
// the [Page] templ component and written to disk in one step.
package report

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// DefaultTitle is the page title and heading.
const DefaultTitle = "Registered Participants"

// timestampLayout renders as "HH:MM:SS, DD Month YYYY".
const timestampLayout = "15:04:05, 02 January 2006"

// Row is one line of a listing.
type Row struct {
	Name        string
	Institution string
}

// Report is the data behind one page.
type Report struct {
	Title    string
	Updated  string // formatted "Last Updated" value
	InPerson []Row
	Remote   []Row
}

// New builds a report with both listings sorted and the timestamp taken
// from now. The input slices are not modified.
func New(title string, inPerson, remote []Row, now time.Time) Report {
	if title == "" {
		title = DefaultTitle
	}
	return Report{
		Title:    title,
		Updated:  FormatTimestamp(now),
		InPerson: SortRows(inPerson),
		Remote:   SortRows(remote),
	}
}

// SortRows returns a copy of rows ordered by case-insensitive name.
// Equal names keep their relative order.
func SortRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// FormatTimestamp formats t for the "Last Updated" line.
//
// The "(UTC)" suffix is a fixed label. t is printed in whatever location it
// carries; callers wanting a true UTC clock pass t.UTC().
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout) + " (UTC)"
}

// Render returns the complete HTML document.
func (r Report) Render(ctx context.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := Page(r).Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("render report: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders r and writes it to path, replacing any existing file.
// Nothing is written if rendering fails.
func WriteFile(ctx context.Context, path string, r Report) error {
	doc, err := r.Render(ctx)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
