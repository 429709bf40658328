package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "nil error returns empty",
			err:      nil,
			wantCode: "",
		},
		{
			name:     "missing input",
			err:      fmt.Errorf("%w: /tmp/nope.csv", ErrInputNotFound),
			wantCode: "FILE001",
		},
		{
			name:     "csv parse failure",
			err:      errors.New("invalid csv: record on line 3: wrong number of fields"),
			wantCode: "FILE002",
		},
		{
			name:     "xlsx open failure",
			err:      errors.New("invalid xlsx: zip: not a valid zip file"),
			wantCode: "FILE002",
		},
		{
			name:     "decode error",
			err:      &DecodeError{Encoding: "utf-8", Offset: 12, Byte: 0xE9},
			wantCode: "FILE003",
		},
		{
			name:     "empty input",
			err:      fmt.Errorf("%w: in.csv", ErrEmptyInput),
			wantCode: "FILE004",
		},
		{
			name:     "unsupported encoding",
			err:      fmt.Errorf("%w: %q", ErrUnsupportedEncoding, "klingon"),
			wantCode: "CFG001",
		},
		{
			name:     "write failure",
			err:      errors.New("write report: open out.html: permission denied"),
			wantCode: "OUT001",
		},
		{
			name:     "request cancelled",
			err:      context.Canceled,
			wantCode: "REQ001",
		},
		{
			name:     "request timed out",
			err:      fmt.Errorf("render report: %w", context.DeadlineExceeded),
			wantCode: "REQ002",
		},
		{
			name:     "unknown error returns default",
			err:      errors.New("some random internal error"),
			wantCode: "ERR000",
		},
		{
			name:     "case insensitive matching",
			err:      errors.New("INVALID CSV"),
			wantCode: "FILE002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
		})
	}
}

func TestFormatUserError(t *testing.T) {
	if got := FormatUserError(nil); got != "" {
		t.Errorf("FormatUserError(nil) = %q, want empty", got)
	}

	got := FormatUserError(ErrInputNotFound)
	want := "Input file does not exist (Code: FILE001). Check ROSTER_INPUT or pass --input"
	if got != want {
		t.Errorf("FormatUserError() = %q, want %q", got, want)
	}
}
