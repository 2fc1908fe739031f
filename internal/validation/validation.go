// Package validation checks user-supplied input against static rules before
// it reaches storage or the inference service. Validators report expected
// invalid input through the Result type and never return an error.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// MaxPromptLength bounds prompt text to control inference costs.
	MaxPromptLength = 2000

	// MaxNegativePromptLength bounds the optional negative prompt.
	MaxNegativePromptLength = 1000

	// MaxFileSize is the per-file upload ceiling (10MB).
	MaxFileSize = 10 * 1024 * 1024

	// MaxEmailLength follows the RFC 5321 address limit.
	MaxEmailLength = 254
)

// Result is a discriminated validation outcome.
type Result struct {
	Valid bool
	Error string
}

func ok() Result {
	return Result{Valid: true}
}

func fail(msg string) Result {
	return Result{Valid: false, Error: msg}
}

// maliciousPatterns reject injection-shaped text in prompts.
var maliciousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(<script|javascript:|onerror=|onload=)`), // XSS attempts
	regexp.MustCompile(`(?i)(eval\(|exec\(|system\()`),               // code injection attempts
	regexp.MustCompile(`(?i)(\bDROP\b|\bDELETE\b|\bTRUNCATE\b)`),     // destructive SQL keywords
	regexp.MustCompile(`(\.\./|\.\.\\)`),                             // path traversal
}

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// allowedMIMETypes maps accepted upload MIME types to their valid extensions.
var allowedMIMETypes = map[string][]string{
	"image/jpeg": {"jpg", "jpeg"},
	"image/jpg":  {"jpg", "jpeg"},
	"image/png":  {"png"},
	"image/webp": {"webp"},
}

// ValidatePrompt checks prompt text for length, injection patterns, and
// excessive word repetition.
func ValidatePrompt(prompt string) Result {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return fail("Prompt is required")
	}

	if utf8.RuneCountInString(trimmed) < 3 {
		return fail("Prompt must be at least 3 characters")
	}

	if utf8.RuneCountInString(trimmed) > MaxPromptLength {
		return fail(fmt.Sprintf("Prompt too long. Maximum %d characters allowed", MaxPromptLength))
	}

	for _, pattern := range maliciousPatterns {
		if pattern.MatchString(trimmed) {
			return fail("Invalid content detected. Please remove special characters or code.")
		}
	}

	// More than 20 words with a unique-word ratio below 0.3 signals spam.
	words := strings.Fields(trimmed)
	if len(words) > 20 {
		unique := make(map[string]struct{}, len(words))
		for _, w := range words {
			unique[w] = struct{}{}
		}
		if float64(len(unique))/float64(len(words)) < 0.3 {
			return fail("Prompt contains too much repetition. Please provide varied description.")
		}
	}

	return ok()
}

// ValidateNegativePrompt checks the optional negative prompt. It applies the
// same injection rules as ValidatePrompt with a lower length ceiling and no
// repetition check.
func ValidateNegativePrompt(prompt string) Result {
	if prompt == "" {
		return ok()
	}

	if utf8.RuneCountInString(prompt) > MaxNegativePromptLength {
		return fail(fmt.Sprintf("Negative prompt too long. Maximum %d characters allowed", MaxNegativePromptLength))
	}

	for _, pattern := range maliciousPatterns[:3] {
		if pattern.MatchString(prompt) {
			return fail("Invalid content detected in negative prompt.")
		}
	}

	return ok()
}

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)on\w+=`)
)

// SanitizePrompt strips potentially harmful content and clamps length.
func SanitizePrompt(prompt string) string {
	s := strings.TrimSpace(prompt)
	s = angleBrackets.ReplaceAllString(s, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	// Clamp on rune boundaries so a multibyte character is never split.
	if utf8.RuneCountInString(s) > MaxPromptLength {
		s = string([]rune(s)[:MaxPromptLength])
	}
	return s
}

// ValidateFileUpload checks an uploaded file's size, MIME type, and that the
// file extension agrees with the declared MIME type.
func ValidateFileUpload(fileName, mimeType string, size int64) Result {
	if fileName == "" || size == 0 {
		return fail("No file provided")
	}

	if size > MaxFileSize {
		sizeMB := float64(size) / 1024 / 1024
		return fail(fmt.Sprintf("File too large (%.2fMB). Maximum size is 10MB", sizeMB))
	}

	expectedExts, allowed := allowedMIMETypes[strings.ToLower(mimeType)]
	if !allowed {
		return fail(fmt.Sprintf("Invalid file type: %s. Only JPEG, PNG, and WebP are allowed", mimeType))
	}

	idx := strings.LastIndex(fileName, ".")
	if idx < 0 || idx == len(fileName)-1 {
		return fail("File extension does not match file type")
	}
	ext := strings.ToLower(fileName[idx+1:])
	for _, e := range expectedExts {
		if ext == e {
			return ok()
		}
	}

	return fail("File extension does not match file type")
}

// ValidateEmail checks RFC-shape and length.
func ValidateEmail(email string) Result {
	if email == "" {
		return fail("Email is required")
	}

	if !emailRegexp.MatchString(email) {
		return fail("Invalid email format")
	}

	if len(email) > MaxEmailLength {
		return fail("Email too long")
	}

	return ok()
}

// ValidatePassword requires length 8-128 with at least one letter and one digit.
func ValidatePassword(password string) Result {
	if password == "" {
		return fail("Password is required")
	}

	if len(password) < 8 {
		return fail("Password must be at least 8 characters")
	}

	if len(password) > 128 {
		return fail("Password too long (max 128 characters)")
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fail("Password must contain at least one letter and one number")
	}

	return ok()
}

// ValidateSignupPassword is the stricter signup path: it additionally
// requires at least one uppercase and one lowercase letter.
func ValidateSignupPassword(password string) Result {
	if res := ValidatePassword(password); !res.Valid {
		return res
	}

	var hasUpper, hasLower bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		}
	}
	if !hasUpper || !hasLower {
		return fail("Password must contain both uppercase and lowercase letters")
	}

	return ok()
}
