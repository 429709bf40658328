// Package core provides the attendee pipeline.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
//
//	FILE001 - Input not found: the configured export does not exist
//	          Action: Check ROSTER_INPUT or pass --input
//	          Patterns: "input file not found"
//
//	FILE002 - Invalid file: the export could not be parsed as CSV or XLSX
//	          Action: Re-export the registration sheet as CSV
//	          Patterns: "invalid csv", "invalid xlsx", "sheet not found"
//
//	FILE003 - Encoding error: the export contains bytes the encoding cannot represent
//	          Action: Set ROSTER_ENCODING to the encoding the export was saved in
//	          Patterns: "encoding error"
//
//	FILE004 - Empty file: the export has no header row
//	          Action: Export the sheet with its header row
//	          Patterns: "empty file"
//
//	CFG001  - Unsupported encoding: the encoding name is unknown
//	          Action: Use an IANA charset name such as latin-1, windows-1252 or utf-8
//	          Patterns: "unsupported encoding"
//
//	OUT001  - Write failed: the page could not be written
//	          Action: Check that the output directory exists and is writable
//	          Patterns: "write report"
//
//	REQ001/REQ002 - Request cancelled or timed out (preview server)
//
//	ERR000  - Unknown error: An unexpected error occurred
//
// Error patterns are matched case-insensitively using strings.Contains.
// The first matching pattern wins.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Input Errors (FILE001-FILE004)
	// =========================================================================
	{
		pattern: "input file not found",
		msg: UserMessage{
			Message: "Input file does not exist",
			Action:  "Check ROSTER_INPUT or pass --input",
			Code:    "FILE001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Re-export the registration sheet as CSV",
			Code:    "FILE002",
		},
	},
	{
		pattern: "invalid xlsx",
		msg: UserMessage{
			Message: "File is not a valid XLSX workbook",
			Action:  "Re-export the registration sheet as CSV or XLSX",
			Code:    "FILE002",
		},
	},
	{
		pattern: "sheet not found",
		msg: UserMessage{
			Message: "Configured sheet does not exist in the workbook",
			Action:  "Check ROSTER_SHEET or pass --sheet",
			Code:    "FILE002",
		},
	},
	{
		pattern: "encoding error",
		msg: UserMessage{
			Message: "File contains characters the configured encoding cannot represent",
			Action:  "Set ROSTER_ENCODING to the encoding the export was saved in",
			Code:    "FILE003",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The input file is empty",
			Action:  "Export the sheet with its header row",
			Code:    "FILE004",
		},
	},

	// =========================================================================
	// Configuration Errors (CFG001)
	// =========================================================================
	{
		pattern: "unsupported encoding",
		msg: UserMessage{
			Message: "Unknown text encoding",
			Action:  "Use an IANA charset name such as latin-1, windows-1252 or utf-8",
			Code:    "CFG001",
		},
	},

	// =========================================================================
	// Output Errors (OUT001)
	// =========================================================================
	{
		pattern: "write report",
		msg: UserMessage{
			Message: "The participants page could not be written",
			Action:  "Check that the output directory exists and is writable",
			Code:    "OUT001",
		},
	},

	// =========================================================================
	// Request Errors (REQ001-REQ002)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Try again or check the size of the export",
			Code:    "REQ002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or check the logs",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, a generic fallback with code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}
