package service

import (
	"regexp"
	"strings"
)

var tagStripPattern = regexp.MustCompile(`[^a-z0-9]+`)

// NormalizeTag lowercases a tag and strips every character outside
// [a-z0-9]. "#Hello-World!" and "helloworld" normalize identically. The
// same function is applied on the creation path and the lookup path so
// the two can never disagree.
func NormalizeTag(tag string) string {
	return tagStripPattern.ReplaceAllString(strings.ToLower(tag), "")
}
