package documents

import (
	"fmt"

	"github.com/ledgerly/backoffice-api/internal/domain"
)

// Format selects the output encoding of a render call.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatWord Format = "word"
)

// MIME types the gateway returns for generated documents.
const (
	MIMEPDF  = "application/pdf"
	MIMEDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// ParseFormat maps the ?format= query value to a Format. Empty input
// defaults to PDF; anything else than "pdf"/"word" is a validation error
// owned by the gateway.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", string(FormatPDF):
		return FormatPDF, nil
	case string(FormatWord):
		return FormatWord, nil
	}
	return "", fmt.Errorf("%w: format must be \"pdf\" or \"word\", got %q", domain.ErrInvalidInput, s)
}

// MIME returns the response content type for the format.
func (f Format) MIME() string {
	if f == FormatWord {
		return MIMEDocx
	}
	return MIMEPDF
}

// Ext returns the filename extension for the format.
func (f Format) Ext() string {
	if f == FormatWord {
		return "docx"
	}
	return "pdf"
}
