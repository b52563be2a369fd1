package promo

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCode         = errors.New("invalid promo code format")
	ErrInvalidDiscount     = errors.New("promo discount must be strictly between 0 and 1")
	ErrCodeNotFound        = errors.New("promo code not found")
	ErrAlreadyApplied      = errors.New("a promo code is already applied")
	ErrDuplicateCatalogKey = errors.New("duplicate promo code in catalog")
)

var codeRegex = regexp.MustCompile(`^[A-Z0-9]{3,20}$`)

// Code is the canonical, upper-cased form of a promo code.
type Code string

func NewCode(raw string) (Code, error) {
	code := strings.TrimSpace(strings.ToUpper(raw))
	if !codeRegex.MatchString(code) {
		return Code(""), ErrInvalidCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}
