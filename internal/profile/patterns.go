// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profile

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Each heuristic field is a "key: value" section. The value runs
// non-greedily up to a blank line or a line starting with '#'.
const sectionEnd = `\n\n|\n#`

var (
	bioPattern     = sectionPattern(`about|description|overview`, "")
	thesisPattern  = sectionPattern(`investment thesis|thesis|approach|strategy`, "")
	sectorsPattern = sectionPattern(`sectors|industries|focus areas`, "")
	stagesPattern  = sectionPattern(`stages|investment stages|phase`, "")

	// Ticket sizes also stop at a currency symbol or a thousands suffix,
	// so "Ticket size: 50k-500k" captures only " 50".
	sizePattern = sectionPattern(`ticket size|investment size|check size`, `|€|k|\$`)

	numberPattern = regexp.MustCompile(`\d+(?:,\d+)*(?:\.\d+)?`)
	listSeparator = regexp.MustCompile(`[,;]`)
)

func sectionPattern(keys, extraEnd string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)(?:` + keys + `):(.*?)(?:` + sectionEnd + extraEnd + `)`)
}

// findSection returns the trimmed value of the first match of re in text.
func findSection(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// splitList splits a section value on ',' or ';' and trims each piece.
// Empty pieces are kept so list positions match the source text.
func splitList(s string) []string {
	parts := listSeparator.Split(s, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Numbers returns every numeric token in s with thousands separators
// removed. Tokens that do not parse are skipped.
func Numbers(s string) []float64 {
	var out []float64
	for _, tok := range numberPattern.FindAllString(s, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}

// maxScaled bounds a scaled ticket value so that avg*3/2 still fits in an
// int64.
const maxScaled = math.MaxInt64 / 3

// SizeRange derives a min/max ticket from the numbers found in a size
// section. Values are in thousands and scaled by factor. Two or more
// numbers give min and max directly; a single number is an average with
// min = avg/2 and max = avg*3/2, both floored. ok is false when nums is
// empty or a used number scales beyond maxScaled.
func SizeRange(nums []float64, factor int64) (minSize, maxSize int64, ok bool) {
	scale := func(v float64) (int64, bool) {
		f := math.Floor(v * float64(factor))
		if math.IsNaN(f) || f < 0 || f > maxScaled {
			return 0, false
		}
		return int64(f), true
	}

	switch {
	case len(nums) >= 2:
		lo, okLo := scale(nums[0])
		hi, okHi := scale(nums[1])
		if !okLo || !okHi {
			return 0, 0, false
		}
		return lo, hi, true
	case len(nums) == 1:
		avg, inRange := scale(nums[0])
		if !inRange {
			return 0, 0, false
		}
		return avg / 2, avg * 3 / 2, true
	default:
		return 0, 0, false
	}
}
