package models

import (
	"fmt"
	"slices"
	"strings"
)

type SummaryLength string

const (
	SummaryShort  SummaryLength = "short"
	SummaryMedium SummaryLength = "medium"
	SummaryLong   SummaryLength = "long"
)

var SummaryLengths = []SummaryLength{SummaryShort, SummaryMedium, SummaryLong}

// ParseSummaryLength accepts the three tiers case-insensitively.
func ParseSummaryLength(s string) (SummaryLength, error) {
	l := SummaryLength(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(SummaryLengths, l) {
		return "", fmt.Errorf("unknown summary length %q", s)
	}
	return l, nil
}
