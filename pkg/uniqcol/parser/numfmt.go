package parser

import "strings"

// isDateNumFmt reports whether a number format renders dates. Built-in
// formats 14-17 and 22 are dates; pure time formats are left as numbers.
func isDateNumFmt(id int, custom *string) bool {
	if custom != nil && *custom != "" {
		return isDateFormatCode(*custom)
	}
	return (id >= 14 && id <= 17) || id == 22
}

// isDateFormatCode reports whether a custom format code contains a year or
// day token. Quoted literals, escaped characters and bracketed sections
// (colors, locales, conditions) are ignored. Only the first section counts.
func isDateFormatCode(code string) bool {
	inQuote, inBracket := false, false
	for i := 0; i < len(code); i++ {
		c := code[i]
		switch {
		case inQuote:
			if c == '"' {
				inQuote = false
			}
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '"':
			inQuote = true
		case c == '[':
			inBracket = true
		case c == '\\' || c == '_' || c == '*':
			i++ // skip the escaped or padding character
		case c == ';':
			return false
		case strings.IndexByte("yYdD", c) >= 0:
			return true
		}
	}
	return false
}
