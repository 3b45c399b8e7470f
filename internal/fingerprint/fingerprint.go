// Package fingerprint derives numeric fingerprints from recognized text and
// classifies candidates against a user's fingerprint history.
package fingerprint

import "unicode"

// Fingerprint is the set of distinct decimal-digit runs found in a text.
// Tokens are compared as strings, not parsed integers, so "007" and "7" are
// different tokens.
type Fingerprint map[string]struct{}

// Verdict is the classification result for a candidate fingerprint.
type Verdict string

const (
	// VerdictUnique means the candidate matches no fingerprint in the history.
	VerdictUnique Verdict = "unique"
	// VerdictDuplicate means the candidate exactly equals a stored fingerprint.
	VerdictDuplicate Verdict = "duplicate"
	// VerdictNoSignal means the candidate is empty: the text contained no
	// digits, so there is nothing to compare against.
	VerdictNoSignal Verdict = "no_signal"
)

// Extract scans text for maximal runs of decimal digits and returns them as
// a set. A digit is any Unicode decimal digit (category Nd), so runs in
// non-Latin scripts such as Arabic-Indic numerals are extracted too.
// Duplicate runs collapse and order is discarded. A text without digits
// yields an empty fingerprint.
func Extract(text string) Fingerprint {
	fp := make(Fingerprint)
	start := -1
	for i, r := range text {
		if unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			fp[text[start:i]] = struct{}{}
			start = -1
		}
	}
	if start >= 0 {
		fp[text[start:]] = struct{}{}
	}
	return fp
}

// IsEmpty reports whether the fingerprint contains no tokens.
func (f Fingerprint) IsEmpty() bool {
	return len(f) == 0
}

// Equal reports exact set equality with other.
func (f Fingerprint) Equal(other Fingerprint) bool {
	if len(f) != len(other) {
		return false
	}
	for token := range f {
		if _, ok := other[token]; !ok {
			return false
		}
	}
	return true
}

// Tokens returns the fingerprint's tokens in unspecified order.
func (f Fingerprint) Tokens() []string {
	tokens := make([]string, 0, len(f))
	for token := range f {
		tokens = append(tokens, token)
	}
	return tokens
}

// Classify compares candidate against each fingerprint in history.
// An empty candidate is VerdictNoSignal regardless of history. Otherwise the
// verdict is VerdictDuplicate on the first exact set match and VerdictUnique
// when nothing matches; since equality is exact, the order of history does
// not affect the verdict.
func Classify(candidate Fingerprint, history []Fingerprint) Verdict {
	if candidate.IsEmpty() {
		return VerdictNoSignal
	}
	for _, existing := range history {
		if candidate.Equal(existing) {
			return VerdictDuplicate
		}
	}
	return VerdictUnique
}
