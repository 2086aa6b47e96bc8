package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateCardID validates a card identifier for safety and correctness.
// Card ids flow into cache keys, file names, and API paths, so the rules
// are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateCardID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidCard, "card id cannot be empty")
	}

	if len(id) > 256 {
		return New(ErrCodeInvalidCard, "card id too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidCard, "card id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidCard, "card id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// kindRegex matches valid signal kind names: lowercase identifiers with
// optional hyphen or underscore separators.
var kindRegex = regexp.MustCompile(`^[a-z0-9]([a-z0-9._-]*[a-z0-9])?$`)

// ValidateKind validates a signal kind name.
func ValidateKind(kind string) error {
	if err := ValidateCardID(kind); err != nil {
		return err
	}

	if !kindRegex.MatchString(kind) {
		return New(ErrCodeInvalidSignal, "invalid signal kind: %q", kind)
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
