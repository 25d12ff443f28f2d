package analyze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/structtag"

	"builder-generator/internal/schema"
)

// parseAttributes returns every entry under key in a raw struct tag.
// Duplicate keys are kept so the classifier can reject them. A syntax error
// elsewhere in the tag is ignored; only a malformed entry under key fails.
func parseAttributes(tag, key string) ([]schema.Attribute, error) {
	if tag == "" {
		return nil, nil
	}

	tags, err := structtag.Parse(tag)
	if err != nil {
		return scanAttributes(tag, key)
	}

	if tags == nil {
		return nil, nil
	}

	var attrs []schema.Attribute

	for _, t := range tags.Tags() {
		if t.Key == key {
			attrs = append(attrs, schema.Attribute{Key: t.Key, Payload: t.Value()})
		}
	}

	return attrs, nil
}

// scanAttributes picks the key:"value" entries out of a tag that does not
// parse as a whole.
func scanAttributes(tag, key string) ([]schema.Attribute, error) {
	prefix := key + ":"

	var attrs []schema.Attribute

	for i := 0; ; {
		j := strings.Index(tag[i:], prefix)
		if j < 0 {
			return attrs, nil
		}

		start := i + j
		i = start + len(prefix)

		// part of a longer key, e.g. "xbuilder:"
		if start > 0 && tag[start-1] != ' ' {
			continue
		}

		quoted, err := strconv.QuotedPrefix(tag[i:])
		if err != nil || quoted[0] != '"' {
			return nil, fmt.Errorf("bad syntax for %s entry", key)
		}

		value, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, fmt.Errorf("bad syntax for %s entry: %w", key, err)
		}

		attrs = append(attrs, schema.Attribute{Key: key, Payload: value})
		i += len(quoted)
	}
}
