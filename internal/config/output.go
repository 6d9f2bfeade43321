package config

import (
	"github.com/zzft/ftsite/internal/foundation/normalization"
)

// OutputConfig represents output configuration
type OutputConfig struct {
	Directory string         `yaml:"directory"`
	Formats   []OutputFormat `yaml:"formats,omitempty"`
}

// OutputFormat names a configuration format understood by an external site generator.
type OutputFormat string

const (
	FormatVitePressJSON OutputFormat = "vitepress-json"
	FormatVitePressMJS  OutputFormat = "vitepress-mjs"
	FormatHugo          OutputFormat = "hugo"
)

var outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"vitepress-json": FormatVitePressJSON,
	"vitepress-mjs":  FormatVitePressMJS,
	"hugo":           FormatHugo,
}, FormatVitePressJSON)

// ParseOutputFormat normalizes raw into a known format.
func ParseOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Parse(raw)
}

// OutputFormatNames lists the accepted format names.
func OutputFormatNames() []string { return outputFormatNormalizer.ValidKeys() }

func (f OutputFormat) Valid() bool { return outputFormatNormalizer.IsValid(f) }

func (f *OutputFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseOutputFormat(string(text))
	if err != nil {
		// Keep the raw value so Validate can report it with its position.
		*f = OutputFormat(text)
		return nil
	}
	*f = parsed
	return nil
}
