package recipe

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// TokenKind classifies a numeric token found in an amount string.
type TokenKind int

const (
	// TokenNumber is an integer or a decimal with "." or "," separator.
	TokenNumber TokenKind = iota
	// TokenFraction is a simple fraction such as "1/2".
	TokenFraction
	// TokenMixed is a mixed number such as "2 1/2".
	TokenMixed
)

// lookaheadWindow is how many characters after a token are inspected for
// temperature and time markers.
const lookaheadWindow = 12

var (
	// Mixed numbers must come first so "2 1/2" is not read as "2" then "1/2".
	tokenRe = regexp.MustCompile(`(\d+\s+\d+/\d+)|(\d+/\d+)|(\d+(?:[.,]\d+)?)`)

	// Markers covering both English and Swedish temperature/duration words.
	nonScalableRe = regexp.MustCompile(`[°º]|\b(?:deg|min|hour|hr|stund|sek|minut)`)
)

// Token is one numeric token with its source span (byte offsets into the
// original string) and scaling classification.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
	// Value is the parsed numeric value; only meaningful when Valid.
	Value float64
	// Valid is false for malformed tokens such as "1/0", which are left
	// untouched by consumers instead of failing the whole string.
	Valid bool
	// Scalable is false when the lookahead window marks the token as a
	// temperature or duration. Those must never be multiplied.
	Scalable bool
}

// Tokenize scans s for numeric tokens. It never fails: strings without
// numbers yield an empty slice.
func Tokenize(s string) []Token {
	matches := tokenRe.FindAllStringSubmatchIndex(s, -1)
	if matches == nil {
		return nil
	}

	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		start, end := m[0], m[1]
		text := s[start:end]

		kind := TokenNumber
		switch {
		case m[2] >= 0:
			kind = TokenMixed
		case m[4] >= 0:
			kind = TokenFraction
		}

		value, valid := parseTokenValue(kind, text)
		tokens = append(tokens, Token{
			Kind:     kind,
			Text:     text,
			Start:    start,
			End:      end,
			Value:    value,
			Valid:    valid,
			Scalable: !nonScalableRe.MatchString(lookahead(s, end)),
		})
	}
	return tokens
}

// lookahead returns up to lookaheadWindow characters following the token,
// lowercased for matching.
func lookahead(s string, from int) string {
	rest := []rune(s[from:])
	if len(rest) > lookaheadWindow {
		rest = rest[:lookaheadWindow]
	}
	return strings.ToLower(string(rest))
}

func parseTokenValue(kind TokenKind, text string) (float64, bool) {
	switch kind {
	case TokenMixed:
		parts := strings.Fields(text)
		if len(parts) != 2 {
			return 0, false
		}
		whole, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(parts[1])
		if !ok {
			return 0, false
		}
		return float64(whole) + frac, true
	case TokenFraction:
		return parseFraction(text)
	default:
		v, err := strconv.ParseFloat(strings.ReplaceAll(text, ",", "."), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return 0, false
		}
		return v, true
	}
}

func parseFraction(text string) (float64, bool) {
	num, den, ok := strings.Cut(text, "/")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	d, err := strconv.Atoi(den)
	if err != nil || d == 0 {
		return 0, false
	}
	return float64(n) / float64(d), true
}
