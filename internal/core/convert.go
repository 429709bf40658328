package core

// convert.go decodes raw input bytes into UTF-8 text.
//
// Decoding is strict: a byte the declared encoding cannot represent stops the
// run with a *DecodeError instead of being replaced.

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is the encoding of registration exports unless configured otherwise.
const DefaultEncoding = "latin-1"

// ErrUnsupportedEncoding is returned for encoding names that cannot be decoded.
var ErrUnsupportedEncoding = errors.New("unsupported encoding")

// DecodeError reports a byte sequence that is not valid in the declared encoding.
type DecodeError struct {
	Encoding string
	Offset   int64 // byte offset into the decoded stream, -1 if unknown
	Byte     byte
	Err      error // underlying decoder error, if any
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("encoding error: input is not valid %s: %v", e.Encoding, e.Err)
	}
	return fmt.Sprintf("encoding error: byte 0x%02x at offset %d is not valid %s", e.Byte, e.Offset, e.Encoding)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Decoder converts raw bytes in one encoding to a UTF-8 string.
type Decoder func(data []byte) (string, error)

// LookupDecoder returns a strict decoder for the named encoding.
// Names are IANA charset names or aliases; "latin-1" and "utf-8" spellings
// are accepted as commonly written.
func LookupDecoder(name string) (Decoder, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "utf-8", "utf8":
		return decodeUTF8, nil
	case "", "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return charmapDecoder(charmap.ISO8859_1, "latin-1"), nil
	}

	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
	}
	if cm, ok := enc.(*charmap.Charmap); ok {
		return charmapDecoder(cm, n), nil
	}
	return genericDecoder(enc, n), nil
}

// decodeUTF8 validates UTF-8 input and returns it unchanged.
func decodeUTF8(data []byte) (string, error) {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return "", &DecodeError{Encoding: "utf-8", Offset: int64(i), Byte: data[i]}
		}
		i += size
	}
	return string(data), nil
}

// charmapDecoder decodes a single-byte encoding, rejecting undefined bytes.
func charmapDecoder(cm *charmap.Charmap, name string) Decoder {
	return func(data []byte) (string, error) {
		for i, b := range data {
			if cm.DecodeByte(b) == utf8.RuneError {
				return "", &DecodeError{Encoding: name, Offset: int64(i), Byte: b}
			}
		}
		out, err := cm.NewDecoder().Bytes(data)
		if err != nil {
			return "", &DecodeError{Encoding: name, Offset: -1, Err: err}
		}
		return string(out), nil
	}
}

// genericDecoder decodes multi-byte encodings through x/text.
func genericDecoder(enc encoding.Encoding, name string) Decoder {
	return func(data []byte) (string, error) {
		out, err := enc.NewDecoder().Bytes(data)
		if err != nil {
			return "", &DecodeError{Encoding: name, Offset: -1, Err: err}
		}
		return string(out), nil
	}
}
