// Package lexer tokenizes AsciiDoc text into a flat sequence of typed spans.
//
// The lexer is line oriented and never fails: anything that does not match a
// structural rule degrades to a plain TEXT token, and concatenating the text
// of every emitted token reproduces the input byte-exactly.
package lexer

import (
	"regexp"
	"strings"
)

// blockMacroPattern matches a whole line of the form name::target[attrs].
var blockMacroPattern = regexp.MustCompile(`^([a-zA-Z0-9_]+::)([^\s\[\]]*)(\[[^\]]*\])$`)

type blockMode int

const (
	modeNormal blockMode = iota
	modeListing
	modeExample
)

type lexer struct {
	input  string
	pos    int
	stack  []blockMode
	tokens []Token
}

// Lex tokenizes input in a single pass. The returned tokens are ordered by
// offset and cover the input without gaps.
func Lex(input string) []Token {
	l := &lexer{input: input}
	l.run()
	return l.tokens
}

func (l *lexer) emit(kind Kind, start int, text string) {
	if text == "" {
		return
	}
	l.tokens = append(l.tokens, Token{Kind: kind, Start: start, Text: text})
}

func (l *lexer) mode() blockMode {
	if len(l.stack) == 0 {
		return modeNormal
	}
	return l.stack[len(l.stack)-1]
}

func (l *lexer) push(m blockMode) {
	l.stack = append(l.stack, m)
}

func (l *lexer) pop() {
	if len(l.stack) > 0 {
		l.stack = l.stack[:len(l.stack)-1]
	}
}

// peekLine returns the current physical line without its newline, and whether
// a newline follows it.
func (l *lexer) peekLine() (string, bool) {
	rest := l.input[l.pos:]
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i], true
	}
	return rest, false
}

func (l *lexer) lineBreak(hasNewline bool) {
	if hasNewline {
		l.emit(KindLineBreak, l.pos, "\n")
		l.pos++
	}
}

func (l *lexer) run() {
	for l.pos < len(l.input) {
		line, hasNewline := l.peekLine()

		if l.mode() == modeListing {
			// Listing content is verbatim: only the closing delimiter line is
			// structural.
			if isDelimiterLine(line, '-') {
				l.emit(KindListingDelimiter, l.pos, line)
				l.pop()
			} else {
				l.emit(KindListingText, l.pos, line)
			}
			l.pos += len(line)
			l.lineBreak(hasNewline)
			continue
		}

		// An example-block delimiter consumes its trailing newline as part of
		// the delimiter token.
		if isDelimiterLine(line, '=') {
			text := line
			if hasNewline {
				text += "\n"
			}
			l.emit(KindExampleBlockDelimiter, l.pos, text)
			l.pos += len(text)
			if l.mode() == modeExample {
				l.pop()
			} else {
				l.push(modeExample)
			}
			continue
		}

		if isDelimiterLine(line, '-') {
			l.emit(KindListingDelimiter, l.pos, line)
			l.pos += len(line)
			l.push(modeListing)
			l.lineBreak(hasNewline)
			continue
		}

		if isDelimiterLine(line, '/') {
			l.lexBlockComment()
			continue
		}

		if l.mode() == modeExample {
			// Example content is not re-tokenized into structural constructs.
			l.emit(KindText, l.pos, line)
			l.pos += len(line)
			l.lineBreak(hasNewline)
			continue
		}

		l.lexNormalLine(l.pos, line)
		l.pos += len(line)
		l.lineBreak(hasNewline)
	}
}

// lexBlockComment consumes from the opening ////-style delimiter line through
// the matching closing line (or end of input) and emits the whole block as a
// single BLOCK_COMMENT token.
func (l *lexer) lexBlockComment() {
	start := l.pos
	line, hasNewline := l.peekLine()
	l.pos += len(line)
	for hasNewline {
		l.pos++
		line, hasNewline = l.peekLine()
		l.pos += len(line)
		if isDelimiterLine(line, '/') {
			break
		}
	}
	l.emit(KindBlockComment, start, l.input[start:l.pos])
}

func (l *lexer) lexNormalLine(start int, line string) {
	if line == "" {
		return
	}
	if isHeadingLine(line) {
		l.emit(KindHeading, start, line)
		return
	}
	if strings.HasPrefix(line, "//") {
		l.emit(KindLineComment, start, line)
		return
	}
	if m := blockMacroPattern.FindStringSubmatch(line); m != nil {
		l.emit(KindBlockMacroID, start, m[1])
		l.emit(KindBlockMacroBody, start+len(m[1]), m[2])
		l.emit(KindBlockMacroAttributes, start+len(m[1])+len(m[2]), m[3])
		return
	}
	if len(line) > 1 && line[0] == '.' && line[1] != ' ' && line[1] != '\t' {
		l.emit(KindTitle, start, line)
		return
	}
	if line[0] == '[' {
		l.lexBlockAttrs(start, line)
		return
	}
	l.emit(KindText, start, line)
}

// lexBlockAttrs tokenizes a [attr,attr,...] line. A missing closing bracket
// degrades: the names scanned so far are still emitted and no BLOCK_ATTRS_END
// token is produced. Separators and trailing text degrade to TEXT, which
// keeps the stream lossless.
func (l *lexer) lexBlockAttrs(start int, line string) {
	l.emit(KindBlockAttrsStart, start, "[")
	nameStart := 1
	flush := func(end int) {
		if end > nameStart {
			l.emit(KindBlockAttrName, start+nameStart, line[nameStart:end])
		}
	}
	for i := 1; i < len(line); i++ {
		switch line[i] {
		case ']':
			flush(i)
			l.emit(KindBlockAttrsEnd, start+i, "]")
			if i+1 < len(line) {
				l.emit(KindText, start+i+1, line[i+1:])
			}
			return
		case ',':
			flush(i)
			l.emit(KindText, start+i, ",")
			nameStart = i + 1
		}
	}
	flush(len(line))
}

// isDelimiterLine reports whether line consists solely of four or more
// repetitions of c.
func isDelimiterLine(line string, c byte) bool {
	if len(line) < 4 {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != c {
			return false
		}
	}
	return true
}

func isHeadingLine(line string) bool {
	i := 0
	for i < len(line) && line[i] == '=' {
		i++
	}
	return i > 0 && i < len(line) && line[i] == ' '
}
