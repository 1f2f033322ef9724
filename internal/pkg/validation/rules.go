// Package validation adds the domain rules used in request binding tags.
package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validation rule patterns
var (
	// CountryCodePattern accepts one to three letters, e.g. "TR" or "USA"
	CountryCodePattern = `^[A-Za-z]{1,3}$`

	// PhonePattern accepts digits with an optional leading plus and common separators
	PhonePattern = `^\+?[0-9][0-9 ()\-]{5,19}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	CountryCode *regexp.Regexp
	Phone       *regexp.Regexp
}{
	CountryCode: regexp.MustCompile(CountryCodePattern),
	Phone:       regexp.MustCompile(PhonePattern),
}

// Tags of the custom rules
const (
	TagCountryCode = "country_code"
	TagPhone       = "phone"
)

// RegisterRules adds the custom rules to v
func RegisterRules(v *validator.Validate) error {
	if err := v.RegisterValidation(TagCountryCode, matches(CompiledPatterns.CountryCode)); err != nil {
		return err
	}
	return v.RegisterValidation(TagPhone, matches(CompiledPatterns.Phone))
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}
