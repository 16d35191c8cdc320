package eventbridge

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Option is a single symbolic request option: a lowercase underscore-separated
// key paired with an arbitrary value. The value is passed through to the
// request body unchanged; only the key is renamed to the UpperCamelCase form
// the remote API expects.
//
// Example:
//
//	eventbridge.ListEventBuses(eventbridge.Opt("name_prefix", "ops-"))
//	// body: {"NamePrefix": "ops-"}
type Option struct {
	Key   string
	Value any
}

// Opt constructs an Option. It exists purely for call-site brevity.
func Opt(key string, value any) Option {
	return Option{Key: key, Value: value}
}

// Entry is one event entry for PutEvents. Each entry is normalized
// independently before being placed under the body's "Entries" key.
type Entry []Option

// Normalize converts a sequence of options into a body fragment keyed by the
// remote API's UpperCamelCase field names. Values are not inspected or copied
// deeply. A later option with the same key overwrites an earlier one.
//
// Normalize performs no validation: any key is accepted and transformed
// best-effort. Malformed requests are the remote API's to reject.
func Normalize(opts ...Option) map[string]any {
	if len(opts) == 0 {
		return map[string]any{}
	}
	body := make(map[string]any, len(opts))
	for _, opt := range opts {
		body[camelKey(opt.Key)] = opt.Value
	}
	return body
}

// camelKey maps a symbolic key to the remote field name: split on
// underscores, uppercase the first letter of each segment, concatenate.
// Deterministic and total; empty segments contribute nothing.
func camelKey(key string) string {
	if key == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(key))
	for _, seg := range strings.Split(key, "_") {
		if seg == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(seg)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(seg[size:])
	}
	return b.String()
}

// buildBody assembles a request body from normalized options overlaid with the
// operation's required fields. Required fields win on key collision, so a
// stray option can never rename or clobber something like "Name".
func buildBody(required map[string]any, opts []Option) map[string]any {
	body := Normalize(opts...)
	for k, v := range required {
		body[k] = v
	}
	return body
}
