package service

import (
	"fmt"
	"html"
	"unicode/utf8"

	appErrors "github.com/ensaladazo/ensaladazo-backend/internal/errors"
	"github.com/microcosm-cc/bluemonday"
)

// plainText strips markup from user text. The policy escapes entities on
// output, so they are decoded again: stored text is what the user typed,
// minus tags.
type plainText struct {
	policy *bluemonday.Policy
}

func newPlainText() plainText {
	return plainText{policy: bluemonday.StrictPolicy()}
}

// Clean returns s without markup, or a Validation error naming field when the
// result is longer than maxRunes.
func (p plainText) Clean(field, s string, maxRunes int) (string, error) {
	clean := html.UnescapeString(p.policy.Sanitize(s))

	if maxRunes > 0 && utf8.RuneCountInString(clean) > maxRunes {
		return "", appErrors.AddValidationError(field, fmt.Sprintf("must be at most %d characters", maxRunes))
	}

	return clean, nil
}
