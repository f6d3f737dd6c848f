package lexer

const utf8RuneSelf = 0x80

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// Punctuation characters that form Punct tokens. Delimiters are not here:
// they become Group tokens, never Punct.
func isOpByte(b byte) bool {
	switch b {
	case '!', '#', '$', '%', '&', '\'', '*', '+', ',', '-', '.', '/',
		':', ';', '<', '=', '>', '?', '@', '^', '|', '~':
		return true
	default:
		return false
	}
}

func isOpenDelim(b byte) bool {
	return b == '(' || b == '{' || b == '['
}

func isCloseDelim(b byte) bool {
	return b == ')' || b == '}' || b == ']'
}
