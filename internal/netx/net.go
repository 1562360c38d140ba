// Package netx converts uploaded document bytes between the encodings the
// CareerForge API expects: data URLs for verification sessions and bare
// base64 for KYC submissions.
package netx

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrNotDataURL = errors.New("not a base64 data URL")

// DataURL encodes data as "data:<mime>;base64,<payload>". An empty mime is
// sniffed from the content.
func DataURL(mime string, data []byte) string {
	if mime == "" {
		mime = SniffType(data)
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// SniffType returns the MIME type of data without parameters.
func SniffType(data []byte) string {
	ct := http.DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}

// StripDataURL returns the base64 payload of a data URL. Input without a
// "data:" prefix is returned unchanged.
func StripDataURL(s string) string {
	if !strings.HasPrefix(s, "data:") {
		return s
	}
	if i := strings.Index(s, ","); i >= 0 {
		return s[i+1:]
	}
	return s
}

// ParseDataURL splits a base64 data URL into its MIME type and decoded bytes.
func ParseDataURL(s string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, ErrNotDataURL
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode payload: %w", err)
	}
	return mime, data, nil
}
