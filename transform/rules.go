// SPDX-License-Identifier: GPL-3.0-or-later
package transform

import (
	"fmt"
	"regexp"
)

// Rule rewrites the first case-insensitive match of Pattern in a lead token.
// Replacement may reference groups using the regexp.Expand syntax ($1, ${name}).
type Rule struct {
	pattern     *regexp.Regexp
	replacement string
}

func NewRule(pattern, replacement string) (*Rule, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("could not compile rewrite pattern %q: %w", pattern, err)
	}

	return &Rule{
		pattern:     re,
		replacement: replacement,
	}, nil
}

func MustRule(pattern, replacement string) *Rule {
	r, err := NewRule(pattern, replacement)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Rule) Apply(token string) string {
	loc := r.pattern.FindStringSubmatchIndex(token)
	if loc == nil {
		return token
	}

	dst := []byte(token[:loc[0]])
	dst = r.pattern.ExpandString(dst, r.replacement, token, loc)
	return string(dst) + token[loc[1]:]
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s -> %q", r.pattern.String(), r.replacement)
}

const WikipediaPrefix = "wikipedia:"

// DefaultRules normalizes English Wikipedia article links, expands youtu.be
// short links and strips Instagram share tracking.
func DefaultRules() []*Rule {
	return []*Rule{
		MustRule(`^https?://en\.(m\.)?wikipedia\.org/wiki/`, WikipediaPrefix),
		MustRule(`^https?://youtu\.be/`, "https://www.youtube.com/watch?v="),
		MustRule(`\?igshid=[a-z0-9+/]*={0,2}`, ""),
	}
}
