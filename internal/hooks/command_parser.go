// Package hooks provides the rule engine and command inspection helpers
// behind the claude-guard PreToolUse hook.
//
// This file contains the lexical helpers used to inspect raw shell command
// strings. They are deliberately not a shell parser: quoted spans are
// removed with a single non-nested pass and tokens are matched with
// explicit boundary checks. Escaped or unterminated quotes are handled
// best-effort only.
package hooks

import "strings"

// isWordChar reports whether c belongs to a word token ([A-Za-z0-9_]).
func isWordChar(c byte) bool {
	return c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

// isSpaceChar reports whether c is ASCII whitespace.
func isSpaceChar(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// containsWord reports whether word occurs in s as a whole word, bounded on
// both sides by a non-word character or the string edge. "git" matches in
// "git commit" and "git-lfs pull" but not in "digitize".
func containsWord(s, word string) bool {
	for i := 0; i+len(word) <= len(s); i++ {
		if s[i:i+len(word)] != word {
			continue
		}
		if i > 0 && isWordChar(s[i-1]) {
			continue
		}
		if end := i + len(word); end < len(s) && isWordChar(s[end]) {
			continue
		}
		return true
	}
	return false
}

// stripQuotedText returns a copy of command with quoted spans removed,
// delimiters included: first every '...' span, then every "..." span on
// the result. The pass is purely lexical; it knows nothing about escape
// sequences or nesting, and a quote character without a closing partner
// strips nothing and stays in place.
func stripQuotedText(command string) string {
	cleaned := stripQuoteSpans(command, '\'')
	return stripQuoteSpans(cleaned, '"')
}

// stripQuoteSpans removes every span enclosed by a pair of quote bytes.
func stripQuoteSpans(s string, quote byte) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != quote {
			b.WriteByte(s[i])
			continue
		}

		closing := strings.IndexByte(s[i+1:], quote)
		if closing < 0 {
			// Unterminated quote, keep it.
			b.WriteByte(s[i])
			continue
		}
		i += closing + 1
	}
	return b.String()
}

// containsFlagToken reports whether flag occurs in s as a standalone token:
// preceded by the start of the string or whitespace, and followed by the
// end of the string, whitespace, or (when allowEquals is set) '='. This
// keeps "-n" from matching inside "-nx" or "--no-verify", and
// "--no-verify" from matching inside a longer option name.
func containsFlagToken(s, flag string, allowEquals bool) bool {
	for i := 0; i+len(flag) <= len(s); i++ {
		if s[i:i+len(flag)] != flag {
			continue
		}
		if i > 0 && !isSpaceChar(s[i-1]) {
			continue
		}

		end := i + len(flag)
		if end < len(s) && !isSpaceChar(s[end]) && !(allowEquals && s[end] == '=') {
			continue
		}
		return true
	}
	return false
}
