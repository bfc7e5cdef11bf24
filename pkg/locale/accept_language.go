package locale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxHeaderLength caps Accept-Language parsing to guard against oversized headers.
const maxHeaderLength = 4096

// weightedTag is a language tag with its quality value.
type weightedTag struct {
	tag    string
	weight float64
}

// MatchAcceptLanguage returns the supported locale that best matches the
// Accept-Language header. Tags are tried in descending quality order; exact
// matches win over base-language matches (a "de-AT" tag matches a supported
// "de"). Returns false when no tag matches any supported locale.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func (r *Registry) MatchAcceptLanguage(header string) (string, bool) {
	tags := parseWeightedTags(header)
	if len(tags) == 0 {
		return "", false
	}

	for _, t := range tags {
		if id, ok := r.Canonicalize(t.tag); ok {
			return id, true
		}
	}

	// Second pass: strip regions and retry ("en-us" → "en").
	for _, t := range tags {
		base, _, hasRegion := strings.Cut(t.tag, "-")
		if !hasRegion {
			continue
		}
		if id, ok := r.Canonicalize(base); ok {
			return id, true
		}
	}

	return "", false
}

// parseWeightedTags parses an Accept-Language header into tags sorted by
// descending quality. Wildcards and malformed quality values are ignored.
func parseWeightedTags(header string) []weightedTag {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		tag, params, hasParams := strings.Cut(part, ";")
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" || tag == "*" {
			continue
		}

		weight := 1.0
		if hasParams {
			params = strings.TrimSpace(params)
			if q, ok := strings.CutPrefix(params, "q="); ok {
				if v, err := strconv.ParseFloat(q, 64); err == nil && v >= 0 && v <= 1 {
					weight = v
				}
			}
		}

		tags = append(tags, weightedTag{tag: tag, weight: weight})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.weight, a.weight)
	})

	return tags
}
