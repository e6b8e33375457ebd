// Package stringlib provides string functions beyond goLang primitives
package stringlib

import (
	"regexp"
	"strings"

	"jaytaylor.com/html2text"
)

/***************************************************************************************************************
****************************************************************************************************************
* String functions *********************************************************************************************
****************************************************************************************************************
****************************************************************************************************************/

var reNewLines = regexp.MustCompile(`(\n+)`)

// RmNewLines removes any newline found on the input string
func RmNewLines(t string) string {
	return reNewLines.ReplaceAllString(t, "")
}

// SplitList splits a separator-joined list such as "the|and|was", trimming
// every item and dropping the empty ones
func SplitList(t string, sep string) []string {
	var items []string
	for _, item := range strings.Split(RmNewLines(t), sep) {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	return items
}

// Unique drops empty and repeated strings, keeping the first occurrence order
func Unique(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// StripHTML turns an HTML fragment into plain text. Text without markup or
// entities is returned unchanged.
func StripHTML(t string) (string, error) {
	if !strings.ContainsAny(t, "<&") {
		return t, nil
	}
	plain, err := html2text.FromString(t, html2text.Options{PrettyTables: false})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(plain), nil
}
