// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Report  ReportConfig
	Server  ServerConfig
	Logging LoggingConfig
}

// InputConfig describes the registration export to read.
type InputConfig struct {
	// Path is the registration export (CSV or XLSX)
	Path string `env:"ROSTER_INPUT" envAlt:"INPUT_PATH" default:"Participants List(Sheet1).csv"`

	// Encoding is the text encoding of delimited input (default: latin-1)
	Encoding string `env:"ROSTER_ENCODING" default:"latin-1"`

	// Delimiter is the field separator of delimited input (default: ",")
	Delimiter string `env:"ROSTER_DELIMITER" default:","`

	// Sheet is the XLSX sheet to read; empty selects the first sheet
	Sheet string `env:"ROSTER_SHEET"`
}

// OutputConfig describes where the rendered page goes.
type OutputConfig struct {
	// Path is the HTML document to write, overwritten on every run
	Path string `env:"ROSTER_OUTPUT" envAlt:"OUTPUT_PATH" default:"registered_participants.html"`
}

// ReportConfig holds rendering settings.
type ReportConfig struct {
	// Title is the page title and heading (default: Registered Participants)
	Title string `env:"REPORT_TITLE" default:"Registered Participants"`

	// UTC converts the "Last Updated" clock to UTC. The label always says
	// "(UTC)"; with this off the local clock is printed under that label.
	UTC bool `env:"REPORT_UTC" default:"false"`
}

// ServerConfig holds settings for the preview server.
type ServerConfig struct {
	// Host is the interface to bind to (default: 127.0.0.1)
	Host string `env:"SERVER_HOST" default:"127.0.0.1"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading a request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 10s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
