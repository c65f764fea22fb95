// Package fingerprint derives the near-duplicate detection key for resume
// text. The key is a weak heuristic, not a content address: two different
// resumes can collide and a match only flags a submission, it never blocks it.
package fingerprint

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
)

// Version prefixes every fingerprint so the scheme can be rotated later.
const Version = "v1"

const sliceLen = 10

// normalize trims, lower-cases and strips ALL whitespace (not just runs to
// single spaces), then returns the UTF-16 code units of the result. The hash
// and the length/slice components all operate on code units so fingerprints
// line up with records produced by the original JavaScript frontend, whose
// charCodeAt/substring work on UTF-16.
func normalize(text string) []uint16 {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return utf16.Encode([]rune(b.String()))
}

// hash31 is the rolling hash h = h*31 + c with 32-bit signed wraparound.
func hash31(units []uint16) int32 {
	var h int32
	for _, c := range units {
		h = h*31 + int32(c)
	}
	return h
}

// Fingerprint returns the dedup key for raw resume text, formatted as
// v1_{abs(hash)}_{normalizedLength}_{first10}_{last10}. The head and tail
// slices may overlap (or be empty) when the normalized text is short.
func Fingerprint(text string) string {
	units := normalize(text)
	h := int64(hash31(units))
	if h < 0 {
		h = -h
	}

	head := units
	if len(head) > sliceLen {
		head = head[:sliceLen]
	}
	tail := units
	if len(tail) > sliceLen {
		tail = tail[len(tail)-sliceLen:]
	}

	return fmt.Sprintf("%s_%d_%d_%s_%s",
		Version, h, len(units),
		string(utf16.Decode(head)),
		string(utf16.Decode(tail)),
	)
}

// Seed hashes an arbitrary string with the same rolling scheme and returns
// the absolute value. Used to derive the deterministic decoding seed for the
// resume scoring calls.
func Seed(s string) int64 {
	h := int64(hash31(utf16.Encode([]rune(s))))
	if h < 0 {
		h = -h
	}
	return h
}
