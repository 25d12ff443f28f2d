package schema

import (
	"go/token"
	"strings"

	"builder-generator/internal/match"
)

// Attribute is the raw payload of one builder tag entry,
// e.g. `each=tag` for the tag `builder:"each=tag"`.
type Attribute struct {
	Key     string // tag key the payload was found under
	Payload string
}

// Options is the typed form of an Attribute.
// Accessor is the only recognized option.
type Options struct {
	Accessor string
}

// ParseAttribute parses a payload of the form `<accessorKey>=<name>`.
// The name may be wrapped in single quotes. Anything other than exactly one
// option with the accessor key and a valid Go identifier is rejected with
// KindMalformedAttribute; the caller fills in the field name.
func ParseAttribute(a Attribute, accessorKey string) (Options, error) {
	payload := strings.TrimSpace(a.Payload)
	if payload == "" {
		return Options{}, Errorf(KindMalformedAttribute, "",
			"empty %s attribute, expected %s=<name>", a.Key, accessorKey)
	}

	parts := strings.Split(payload, ",")
	if len(parts) != 1 {
		return Options{}, Errorf(KindMalformedAttribute, "",
			"%q has %d options, expected exactly one %s=<name>", payload, len(parts), accessorKey)
	}

	key, value, ok := strings.Cut(parts[0], "=")
	if !ok {
		return Options{}, Errorf(KindMalformedAttribute, "",
			"%q is not an assignment, expected %s=<name>", payload, accessorKey)
	}

	key = strings.TrimSpace(key)
	if key != accessorKey {
		hint := match.Hint(key, []string{accessorKey})
		if hint == "" {
			hint = ", expected " + accessorKey
		}

		return Options{}, Errorf(KindMalformedAttribute, "", "unknown option %q%s", key, hint)
	}

	name := unquote(strings.TrimSpace(value))
	if name == "" || name == "_" || !token.IsIdentifier(name) {
		return Options{}, Errorf(KindMalformedAttribute, "",
			"accessor %q is not a valid Go identifier", value)
	}

	return Options{Accessor: name}, nil
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}

	return s
}
