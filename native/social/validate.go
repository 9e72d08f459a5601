package social

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	maxHandleLength      = 32
	maxBioLength         = 256
	maxURLLength         = 256
	maxTextLength        = 1024
	maxMessageLength     = 256
	maxCommunityName     = 64
	maxCommunityDesc     = 256
	maxTokenSymbolLength = 8
)

func validateHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("%w: handle required", ErrInvalidParams)
	}
	if utf8.RuneCountInString(handle) > maxHandleLength {
		return fmt.Errorf("%w: handle exceeds %d characters", ErrInvalidParams, maxHandleLength)
	}
	return nil
}

func validateBio(bio string) error {
	if utf8.RuneCountInString(bio) > maxBioLength {
		return fmt.Errorf("%w: bio exceeds %d characters", ErrInvalidParams, maxBioLength)
	}
	return nil
}

// validateURL enforces the shared URL contract: absolute http or https,
// bounded length. Empty strings are allowed wherever the field itself is
// optional; callers skip validation for absent values.
func validateURL(raw string) error {
	if len(raw) > maxURLLength {
		return fmt.Errorf("%w: url exceeds %d bytes", ErrInvalidURL, maxURLLength)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: host required", ErrInvalidURL)
	}
	return nil
}

func validateText(text string) error {
	if utf8.RuneCountInString(text) > maxTextLength {
		return fmt.Errorf("%w: text exceeds %d characters", ErrInvalidParams, maxTextLength)
	}
	return nil
}

func validateContentType(kind ContentType) error {
	switch kind {
	case ContentTypeText, ContentTypeImage, ContentTypeVideo, ContentTypeAudio, ContentTypeLink:
		return nil
	}
	return fmt.Errorf("%w: unknown content type %q", ErrInvalidParams, string(kind))
}

func validateMessage(message string) error {
	if utf8.RuneCountInString(message) > maxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidMessage, maxMessageLength)
	}
	return nil
}

func validateCommunityName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: community name required", ErrInvalidParams)
	}
	if utf8.RuneCountInString(name) > maxCommunityName {
		return fmt.Errorf("%w: community name exceeds %d characters", ErrInvalidParams, maxCommunityName)
	}
	return nil
}

func validateCommunityDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxCommunityDesc {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidParams, maxCommunityDesc)
	}
	return nil
}

func validateTokenSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: token symbol required", ErrInvalidParams)
	}
	if utf8.RuneCountInString(symbol) > maxTokenSymbolLength {
		return fmt.Errorf("%w: token symbol exceeds %d characters", ErrInvalidParams, maxTokenSymbolLength)
	}
	return nil
}
