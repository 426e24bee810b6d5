/* Copyright © 2025 Thomas Dupré. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

var birthDateLayouts = []string{"02-01-2006", "02/01/2006", "02012006"}

// ParseBirthDate parses a player birth date. The canonical operator formats
// are DD-MM-YYYY, DD/MM/YYYY, and DDMMYYYY; anything else is handed to
// dateparse as a lenient fallback.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return dateparse.ParseStrict(s)
}

// CapitalizeName title-cases each word of a name: "jean pierre" becomes
// "Jean Pierre".
func CapitalizeName(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

var (
	nonAlnumRe    = regexp.MustCompile(`[^A-Za-z0-9]`)
	nationalIDRe  = regexp.MustCompile(`^[A-Z]{2}\d{4}$`)
	nonFileCharRe = regexp.MustCompile(`[^a-z0-9_]`)
)

// NormalizeNationalID strips separators, uppercases, and reports whether the
// result matches the national id format (two letters followed by four
// digits, e.g. "AB1234").
func NormalizeNationalID(id string) (string, bool) {
	id = strings.ToUpper(nonAlnumRe.ReplaceAllString(id, ""))
	return id, nationalIDRe.MatchString(id)
}

// SanitizeFileName lowercases a display name and reduces it to a safe file
// name fragment: spaces become underscores, everything outside [a-z0-9_] is
// dropped.
func SanitizeFileName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	return nonFileCharRe.ReplaceAllString(s, "")
}

// ScoreToString renders a chess score using the half-point glyph:
// 0 -> "0", 0.5 -> "½", 2.5 -> "2½".
func ScoreToString(score float64) string {
	whole := int(score)
	half := score-float64(whole) >= 0.25
	if whole == 0 && half {
		return "½"
	}
	out := strconv.Itoa(whole)
	if half {
		out += "½"
	}
	return out
}

// Timestamp returns the current local time in the fixed-width round stamp
// format.
func Timestamp() string {
	return time.Now().Format(TimestampFormat)
}
