// Copyright 2014-2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pbg

import "strconv"

// fieldKind classifies a field's syntactic role for the parser: either
// a recognized operator kind, or one of the literal kinds, or "none" if
// no recognizer matches. Grounded on asm.exprParser.parseToken's
// priority-ordered type-sniffing switch, generalized from the
// assembler's numeric-token grammar to PBG's richer literal set.
type fieldKind struct {
	kind       Kind
	isOperator bool
	ok         bool
}

// classifyField answers the lexical recognizers of spec.md §4.1, in the
// mandated priority order: operator, key, date, number, string, then
// the two boolean literals. The first recognizer to match wins.
func classifyField(s string) fieldKind {
	if k, ok := isOperator(s); ok {
		return fieldKind{k, true, true}
	}
	if isKey(s) {
		return fieldKind{KEY, false, true}
	}
	if isDate(s) {
		return fieldKind{DATE, false, true}
	}
	if isNumber(s) {
		return fieldKind{NUMBER, false, true}
	}
	if isString(s) {
		return fieldKind{STRING, false, true}
	}
	if isTrue(s) {
		return fieldKind{TRUE, false, true}
	}
	if isFalse(s) {
		return fieldKind{FALSE, false, true}
	}
	return fieldKind{}
}

// isOperator recognizes the ten exact operator tokens of spec.md §4.1.
func isOperator(s string) (Kind, bool) {
	switch s {
	case "!":
		return NOT, true
	case "&":
		return AND, true
	case "|":
		return OR, true
	case "=":
		return EQ, true
	case "!=":
		return NEQ, true
	case "<":
		return LT, true
	case "<=":
		return LTE, true
	case ">":
		return GT, true
	case ">=":
		return GTE, true
	case "?":
		return EXST, true
	}
	return 0, false
}

// isKey recognizes a bracketed key literal: first byte '[', last byte
// ']', length at least 2.
func isKey(s string) bool {
	return len(s) >= 2 && s[0] == '[' && s[len(s)-1] == ']'
}

// isDate recognizes the fixed 10-byte DDDD-DD-DD pattern.
func isDate(s string) bool {
	if len(s) != 10 {
		return false
	}
	for i, c := range []byte(s) {
		switch i {
		case 4, 7:
			if c != '-' {
				return false
			}
		default:
			if !isDecimalDigit(c) {
				return false
			}
		}
	}
	return true
}

// isNumber recognizes the grammar of spec.md §4.1: optional sign, an
// integer part that is either a bare "0" or a non-zero digit followed
// by further digits (no multi-digit leading zeros), an optional
// fractional part, and an optional exponent.
func isNumber(s string) bool {
	i, n := 0, len(s)
	if n == 0 {
		return false
	}
	if s[i] == '+' || s[i] == '-' {
		i++
	}
	start := i
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		i++
		for i < n && isDecimalDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i == start {
		return false
	}
	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isDecimalDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return false
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDecimalDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == n
}

// isString recognizes a single-quoted string literal by delimiter alone;
// escape handling lives in the parser's string-context scan (parse.go),
// since recognizing a complete string field requires the same
// quote-toggling logic the phase-1 scan already performs.
func isString(s string) bool {
	return len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\''
}

func isTrue(s string) bool  { return s == "TRUE" }
func isFalse(s string) bool { return s == "FALSE" }

// parseNumberLiteral converts a field already confirmed by isNumber into
// its float64 value.
func parseNumberLiteral(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseDateLiteral converts a field already confirmed by isDate into a
// Date triple, rejecting out-of-range months/days per DESIGN.md's
// resolution of the spec's date-validation Open Question.
func parseDateLiteral(s string) (Date, bool) {
	year := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return Date{}, false
	}
	return Date{year, month, day}, true
}
