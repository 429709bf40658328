package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/JonMunkholm/roster/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Input:   config.InputConfig{Path: "Participants List(Sheet1).csv", Encoding: "latin-1", Delimiter: ","},
		Output:  config.OutputConfig{Path: "registered_participants.html"},
		Report:  config.ReportConfig{Title: "Registered Participants"},
		Server:  config.ServerConfig{Host: "127.0.0.1", Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Second},
		Logging: config.LoggingConfig{Level: "info", Format: "text"},
	}
}

func execute(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_Generate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	output := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(input, []byte(
		"First Name:,Last Name:,Institution,Attendance Mode\n"+
			"Ann,Lee,MIT,In-Person\n"+
			"Bob,Ray,ETH,Remote\n"+
			"Cy,Young,Yale,Online\n"), 0o644))

	out, err := execute(t, testConfig(), "--input", input, "-o", output)
	require.NoError(t, err)

	assert.Equal(t,
		"HTML file '"+output+"' generated successfully.\n"+
			"Total unique attendees: 3\n"+
			"In-person attendees: 1\n"+
			"Remote attendees: 2\n",
		out)

	doc, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Cy Young")
}

func TestRoot_MissingInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "missing.csv")
	output := filepath.Join(dir, "page.html")

	out, err := execute(t, testConfig(), "-i", input, "-o", output)
	require.NoError(t, err, "a missing input is reported, not failed")

	assert.Equal(t, "Error: File '"+input+"' does not exist.\n", out)
	_, statErr := os.Stat(output)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRoot_DecodeErrorFails(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(input, []byte("First Name:,Last Name:\nJos\xe9,Diaz\n"), 0o644))

	_, err := execute(t, testConfig(), "-i", input, "-o", filepath.Join(dir, "page.html"), "--encoding", "utf-8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding error")
}

func TestRoot_InvalidDelimiter(t *testing.T) {
	_, err := execute(t, testConfig(), "--delimiter", "::")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROSTER_DELIMITER")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, testConfig(), "extra")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, testConfig(), "version")
	require.NoError(t, err)
	assert.Equal(t, "roster version dev\n", out)
}

func TestServe_Flags(t *testing.T) {
	cfg := testConfig()
	cmd := newServeCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"--host", "0.0.0.0", "-p", "9000"}))

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
}
