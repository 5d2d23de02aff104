package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Domain prefixes for content-addressed identity.
// The version suffix leaves room for a future algorithm migration.
const (
	DomainPuzzle = "pipemaze/puzzle/v1"
	DomainResult = "pipemaze/result/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
// The null byte keeps the domain/data boundary unambiguous.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// NormalizePuzzle puts puzzle text into the form that is hashed:
// NFC normalized, LF line endings, no trailing blank lines, no trailing
// newline.
func NormalizePuzzle(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}

// PuzzleID computes the content address of puzzle text. Texts that differ
// only in line endings, Unicode composition or trailing newlines share an
// ID.
func PuzzleID(text string) string {
	return hashWithDomain(DomainPuzzle, []byte(NormalizePuzzle(text)))
}

// ResultHash computes the content address of a solve result.
func ResultHash(result IRObject) (string, error) {
	canonical, err := MarshalCanonical(result)
	if err != nil {
		return "", fmt.Errorf("ResultHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainResult, canonical), nil
}

// MustResultHash is like ResultHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustResultHash(result IRObject) string {
	h, err := ResultHash(result)
	if err != nil {
		panic(err)
	}
	return h
}
