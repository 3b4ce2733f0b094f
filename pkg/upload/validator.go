package upload

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Magic byte signatures for the allowed document types.
// Maps lowercase extension to possible magic byte prefixes.
var magicBytes = map[string][][]byte{
	".pdf":  {{0x25, 0x50, 0x44, 0x46}},                         // %PDF
	".doc":  {{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}}, // OLE Compound Document
	".docx": {{0x50, 0x4B, 0x03, 0x04}},                         // ZIP (PK..)
	".txt":  {},                                                 // no magic bytes, rely on MIME detection
}

// Allowed MIME types. application/octet-stream is deliberately absent.
var allowedMIMETypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"text/plain": true,
	// ZIP container reported for DOCX by content sniffing
	"application/zip": true,
}

// ValidateFile checks a candidate upload before anything touches disk:
// extension whitelist, then magic bytes against the extension, then the
// declared MIME type. Returns ErrUnsupportedType on any mismatch.
func ValidateFile(filename string, data []byte, declaredMIME string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	prefixes, ok := magicBytes[ext]
	if !ok {
		return ErrUnsupportedType
	}

	if len(prefixes) > 0 {
		matched := false
		for _, prefix := range prefixes {
			if bytes.HasPrefix(data, prefix) {
				matched = true
				break
			}
		}
		if !matched {
			return ErrUnsupportedType
		}
	}

	// Declared MIME may carry parameters, e.g. "text/plain; charset=utf-8".
	mime := strings.ToLower(strings.TrimSpace(strings.Split(declaredMIME, ";")[0]))
	if !allowedMIMETypes[mime] {
		return ErrUnsupportedType
	}

	return nil
}
