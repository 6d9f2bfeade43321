package site

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zzft/ftsite/internal/foundation"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "doclink", func(fl validator.FieldLevel) bool { return IsDocLink(fl.Field().String()) })
	mustRegister(v, "navlink", func(fl validator.FieldLevel) bool { return isNavLink(fl.Field().String()) })
	mustRegister(v, "assetpath", func(fl validator.FieldLevel) bool { return isAssetPath(fl.Field().String()) })
	mustRegister(v, "searchprovider", func(fl validator.FieldLevel) bool {
		return SearchProvider(fl.Field().String()).Valid()
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// crossField holds the rules struct tags cannot express.
var crossField = foundation.NewValidatorChain(
	validateNavShape,
	validateUniqueLinks,
)

// Validate checks c and returns a validation ClassifiedError listing every
// violation, or nil.
func (c *Config) Validate() error {
	result := foundation.Valid()
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("validate site config: %w", err)
		}
		result = result.Combine(fromValidator(verrs))
	}
	result = result.Combine(crossField.Validate(c))
	return result.ToError("invalid site configuration")
}

// IsDocLink reports whether link is a clean relative path to a markdown
// document: no scheme, no leading slash, no parent segments.
func IsDocLink(link string) bool {
	if link == "" || strings.Contains(link, "://") || strings.HasPrefix(link, "/") {
		return false
	}
	if strings.ContainsAny(link, "\\?#") {
		return false
	}
	cleaned := path.Clean(link)
	if cleaned != link || cleaned == "." || strings.HasPrefix(cleaned, "../") || cleaned == ".." {
		return false
	}
	return strings.HasSuffix(link, ".md")
}

func isNavLink(link string) bool {
	return strings.HasPrefix(link, "/") || strings.HasPrefix(link, "https://") || strings.HasPrefix(link, "http://")
}

func isAssetPath(p string) bool {
	return !strings.Contains(p, "..") && (strings.HasPrefix(p, "./") || strings.HasPrefix(p, "/") || strings.HasPrefix(p, "https://"))
}

func fromValidator(verrs validator.ValidationErrors) foundation.ValidationResult {
	out := make([]foundation.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		out = append(out, foundation.NewValidationError(field, fe.Tag(), describe(fe)))
	}
	return foundation.Invalid(out...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "endswith":
		return fmt.Sprintf("must end with %q", fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("must be between 1 and 6, got %v", fe.Value())
	case "gtefield":
		return "outline max must not be below min"
	case "doclink":
		return fmt.Sprintf("%q is not a relative .md document path", fe.Value())
	case "navlink":
		return fmt.Sprintf("%q must be site-absolute or an http(s) URL", fe.Value())
	case "assetpath":
		return fmt.Sprintf("%q is not a usable asset path", fe.Value())
	case "http_url":
		return fmt.Sprintf("%q is not an http(s) URL", fe.Value())
	case "searchprovider":
		return fmt.Sprintf("unknown search provider %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// validateNavShape enforces link-xor-items and at most one level of nesting.
func validateNavShape(c *Config) foundation.ValidationResult {
	result := foundation.Valid()
	for i, entry := range c.Nav {
		field := fmt.Sprintf("nav[%d]", i)
		result = result.Combine(navEntryShape(field, entry))
		for j, child := range entry.Items {
			childField := fmt.Sprintf("%s.items[%d]", field, j)
			result = result.Combine(navEntryShape(childField, child))
			if child.IsGroup() {
				result = result.Combine(foundation.Invalid(foundation.NewValidationError(
					childField, "depth", "dropdowns cannot be nested")))
			}
		}
	}
	return result
}

func navEntryShape(field string, entry NavEntry) foundation.ValidationResult {
	switch {
	case entry.IsGroup() && entry.Link != "":
		return foundation.Invalid(foundation.NewValidationError(field, "link_xor_items", "has both a link and items"))
	case !entry.IsGroup() && entry.Link == "":
		return foundation.Invalid(foundation.NewValidationError(field, "link_xor_items", "needs a link or items"))
	}
	return foundation.Valid()
}

func validateUniqueLinks(c *Config) foundation.ValidationResult {
	result := foundation.Valid()
	seen := make(map[string]string)
	for i, s := range c.Sidebar {
		for j, item := range s.Items {
			if item.Link == "" {
				continue
			}
			field := fmt.Sprintf("sidebar[%d].items[%d].link", i, j)
			if first, dup := seen[item.Link]; dup {
				result = result.Combine(foundation.Invalid(foundation.NewValidationError(
					field, "unique", fmt.Sprintf("%q already listed at %s", item.Link, first))))
				continue
			}
			seen[item.Link] = field
		}
	}
	return result
}
