package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JonMunkholm/roster/internal/config"
	"github.com/JonMunkholm/roster/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.March, 7, 9, 5, 3, 0, time.UTC)

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	return &config.Config{
		Input:  config.InputConfig{Path: input, Encoding: "latin-1", Delimiter: ","},
		Output: config.OutputConfig{Path: filepath.Join(t.TempDir(), "registered_participants.html")},
		Report: config.ReportConfig{Title: report.DefaultTitle},
	}
}

func TestService_Generate(t *testing.T) {
	input := writeInput(t, "in.csv",
		"First Name:,Last Name:,Institute/Affiliation,Attendance Mode\n"+
			"Ann,Lee,MIT,In-Person\n"+
			"Bob,Ray,ETH,Remote\n"+
			"Ann,Lee,CMU,Virtual\n")
	cfg := testConfig(t, input)

	svc := NewService(cfg, WithClock(func() time.Time { return fixedNow }))
	summary, err := svc.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 0, summary.InPerson)
	assert.Equal(t, 2, summary.Remote)
	assert.Equal(t, 1, summary.Replaced)
	assert.Equal(t, cfg.Output.Path, summary.Output)
	assert.NotEmpty(t, summary.RunID)

	doc, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	html := string(doc)
	assert.Contains(t, html, "<td>Ann Lee</td><td>CMU</td>")
	assert.Contains(t, html, "<td>Bob Ray</td><td>ETH</td>")
	assert.NotContains(t, html, "MIT")
	assert.Contains(t, html, "09:05:03, 07 March 2025 (UTC)")
}

func TestService_Build_Sorted(t *testing.T) {
	input := writeInput(t, "in.csv",
		"First Name:,Last Name:,Institution\n"+
			"carol,Diaz,X\n"+
			"Bob,Ray,Y\n"+
			"alice,Smith,Z\n")

	svc := NewService(testConfig(t, input), WithClock(func() time.Time { return fixedNow }))
	rep, summary, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, summary.InPerson)
	assert.Equal(t, Columns{Institution: "Institution"}, summary.Columns)

	names := make([]string, len(rep.InPerson))
	for i, row := range rep.InPerson {
		names[i] = row.Name
	}
	assert.Equal(t, []string{"alice Smith", "Bob Ray", "carol Diaz"}, names)
	assert.Empty(t, rep.Remote)
}

func TestService_Build_MissingInstitutionColumn(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:,Mode\nAnn,Lee,online\n")

	svc := NewService(testConfig(t, input))
	rep, _, err := svc.Build(context.Background())
	require.NoError(t, err)

	require.Len(t, rep.Remote, 1)
	assert.Equal(t, report.Row{Name: "Ann Lee"}, rep.Remote[0])
}

func TestService_Build_SecondRowWins(t *testing.T) {
	input := writeInput(t, "in.csv",
		"First Name:,Last Name:,Institution,Attendance Mode\n"+
			"Ann,Lee,MIT,Remote\n"+
			"Bob,Koch,CMU,\n"+
			"Ann,Lee,Stanford,Online\n")

	rep, summary, err := NewService(testConfig(t, input)).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, []report.Row{{Name: "Bob Koch", Institution: "CMU"}}, rep.InPerson)
	assert.Equal(t, []report.Row{{Name: "Ann Lee", Institution: "Stanford"}}, rep.Remote)
}

func TestService_Build_DroppedRows(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:\nAnn,\n,Lee\nBob,Ray\n")

	svc := NewService(testConfig(t, input))
	_, summary, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 2, summary.Dropped)
}

func TestService_Generate_HeaderOnly(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:,Institution,Attendance Mode\n")
	cfg := testConfig(t, input)

	summary, err := NewService(cfg).Generate(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.Total)

	doc, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "In-Person Attendees")
	assert.Contains(t, string(doc), "Remote Attendees")
	assert.NotContains(t, string(doc), "<td>")
}

func TestService_Generate_MissingInput(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "missing.csv"))

	_, err := NewService(cfg).Generate(context.Background())
	require.ErrorIs(t, err, ErrInputNotFound)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr), "no page should be written")
}

func TestService_Generate_DecodeErrorWritesNothing(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:\nJos\xe9,Diaz\n")
	cfg := testConfig(t, input)
	cfg.Input.Encoding = "utf-8"

	_, err := NewService(cfg).Generate(context.Background())
	require.Error(t, err)

	_, statErr := os.Stat(cfg.Output.Path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestService_Generate_Overwrites(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:\nAnn,Lee\n")
	cfg := testConfig(t, input)
	require.NoError(t, os.WriteFile(cfg.Output.Path, []byte("stale page"), 0o644))

	_, err := NewService(cfg).Generate(context.Background())
	require.NoError(t, err)

	doc, err := os.ReadFile(cfg.Output.Path)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(doc), "stale page"))
	assert.Contains(t, string(doc), "Ann Lee")
}

func TestService_Build_UTC(t *testing.T) {
	input := writeInput(t, "in.csv", "First Name:,Last Name:\nAnn,Lee\n")
	cfg := testConfig(t, input)
	cfg.Report.UTC = true

	zone := time.FixedZone("UTC+2", 2*60*60)
	local := time.Date(2025, time.March, 7, 11, 5, 3, 0, zone)

	rep, _, err := NewService(cfg, WithClock(func() time.Time { return local })).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "09:05:03, 07 March 2025 (UTC)", rep.Updated)

	cfg.Report.UTC = false
	rep, _, err = NewService(cfg, WithClock(func() time.Time { return local })).Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "11:05:03, 07 March 2025 (UTC)", rep.Updated)
}

func TestService_Build_BadDelimiter(t *testing.T) {
	cfg := testConfig(t, "in.csv")
	cfg.Input.Delimiter = ";;"

	_, _, err := NewService(cfg).Build(context.Background())
	assert.Error(t, err)
}
