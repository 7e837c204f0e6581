package sanitizer

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed denylist.yaml
var denylistYAML []byte

// denylist mirrors the embedded YAML document. The lists are
// configuration data owned by this package; they are parsed and
// compiled exactly once and shared read-only across all calls.
type denylist struct {
	Schemes    []string `yaml:"schemes"`
	Tags       []string `yaml:"tags"`
	Containers []string `yaml:"containers"`
}

// pattern pairs a compiled removal regex with the category it enforces.
type pattern struct {
	category string
	re       *regexp.Regexp
}

// markupPatterns is the ordered removal table behind Sanitize.
// Category order is part of the behavioral contract: URL schemes,
// container element bodies (so script/style content is removed as one
// unit before tag stripping can orphan it), tag pairs, inline event
// handlers.
var markupPatterns = compileDenylist()

func compileDenylist() []pattern {
	var list denylist
	if err := yaml.Unmarshal(denylistYAML, &list); err != nil {
		panic(fmt.Sprintf("sanitizer: embedded denylist is invalid: %v", err))
	}

	patterns := make([]pattern, 0, len(list.Schemes)+len(list.Containers)+2*len(list.Tags)+1)

	for _, scheme := range list.Schemes {
		patterns = append(patterns, pattern{category: "scheme", re: schemeRegexp(scheme)})
	}
	for _, tag := range list.Containers {
		name := regexp.QuoteMeta(tag)
		patterns = append(patterns, pattern{
			category: "container",
			re:       regexp.MustCompile(`(?is)<\s*` + name + `\b[^>]*>.*?<\s*/\s*` + name + `\s*>`),
		})
	}
	for _, tag := range list.Tags {
		name := regexp.QuoteMeta(tag)
		patterns = append(patterns,
			pattern{category: "tag", re: regexp.MustCompile(`(?i)<\s*` + name + `\b[^>]*>`)},
			pattern{category: "tag", re: regexp.MustCompile(`(?i)<\s*/\s*` + name + `\s*>`)},
		)
	}
	patterns = append(patterns, pattern{category: "event-handler", re: eventHandlerRegex})

	return patterns
}

// eventHandlerRegex removes on*-attributes with quoted or bare values.
var eventHandlerRegex = regexp.MustCompile(`(?i)\s*\bon\w+\s*=\s*("[^"]*"|'[^']*'|[^\s>]*)`)

// schemeRegexp builds a case-insensitive matcher for a dangerous URL
// scheme that tolerates arbitrary whitespace between each literal
// character and before the trailing colon, so "java\tscript:" is
// caught as well as "javascript:".
func schemeRegexp(scheme string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString(`(?i)`)
	for _, r := range scheme {
		b.WriteString(regexp.QuoteMeta(string(r)))
		b.WriteString(`\s*`)
	}
	b.WriteString(`:`)
	return regexp.MustCompile(b.String())
}
