// Package normalize converts raw API payloads into storage-ready records.
// Every function here is pure: no I/O, no mutation of its input.
//
// Leniency is deliberately narrow. Dates that fail every accepted layout and
// empty list fields degrade to NULL; everything else (a missing external ID,
// a non-numeric numeric field) is a data error that aborts the record.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"facultetus-sync/internal/facultetus"
)

// MaxTextLen is the widest text column in the schema. Longer values are cut
// to fit, with the final three characters replaced by an ellipsis marker.
const MaxTextLen = 4000

const listDelimiter = ";"

var (
	dateTimeLayouts      = []string{"2006-01-02 15:04:05"}
	dateLayouts          = []string{"2006-01-02"}
	clockLayouts         = []string{"15:04:05"}
	localDatetimeLayouts = []string{"2006-01-02 15:04:05", "2006-01-02"}
)

// ParseTime tries each layout in order and returns the first match. Empty
// input and input matching no layout both yield nil; upstream formatting is
// inconsistent enough that a parse failure is not worth failing a record.
func ParseTime(s string, layouts []string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// JoinList flattens a list-of-object field into a single delimited string,
// or nil when the list is empty or absent.
func JoinList(items facultetus.List) *string {
	if len(items) == 0 {
		return nil
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, it.Data.String())
	}
	s := strings.Join(parts, listDelimiter)
	if s == "" {
		return nil
	}
	return &s
}

// SplitList is the inverse used by the relationship maintainer: it splits a
// joined field back into trimmed, non-empty tokens.
func SplitList(s string) []string {
	var out []string
	for _, tok := range strings.Split(s, listDelimiter) {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Truncate caps s at MaxTextLen characters, marking the cut with "...".
func Truncate(s string) string {
	r := []rune(s)
	if len(r) <= MaxTextLen {
		return s
	}
	return string(r[:MaxTextLen-3]) + "..."
}

func truncatePtr(t facultetus.Text) *string {
	if t == "" {
		return nil
	}
	s := Truncate(string(t))
	return &s
}

func externalID(field string, t facultetus.Text) (int64, error) {
	s := strings.TrimSpace(t.String())
	if s == "" {
		return 0, fmt.Errorf("missing %s", field)
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return id, nil
}
