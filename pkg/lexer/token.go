package lexer

import (
	"fmt"
	"strings"

	"github.com/walteh/go-adoc-refs/pkg/position"
)

// Kind classifies a lexical span of an AsciiDoc document. The set is closed:
// downstream structural parsers rely on these exact names.
type Kind int

const (
	KindText Kind = iota
	KindLineBreak
	KindLineComment
	KindBlockComment
	KindListingDelimiter
	KindListingText
	KindHeading
	KindExampleBlockDelimiter
	KindTitle
	KindBlockMacroID
	KindBlockMacroBody
	KindBlockMacroAttributes
	KindBlockAttrsStart
	KindBlockAttrName
	KindBlockAttrsEnd
)

var kindNames = map[Kind]string{
	KindText:                  "TEXT",
	KindLineBreak:             "LINE_BREAK",
	KindLineComment:           "LINE_COMMENT",
	KindBlockComment:          "BLOCK_COMMENT",
	KindListingDelimiter:      "LISTING_DELIMITER",
	KindListingText:           "LISTING_TEXT",
	KindHeading:               "HEADING",
	KindExampleBlockDelimiter: "EXAMPLE_BLOCK_DELIMITER",
	KindTitle:                 "TITLE",
	KindBlockMacroID:          "BLOCK_MACRO_ID",
	KindBlockMacroBody:        "BLOCK_MACRO_BODY",
	KindBlockMacroAttributes:  "BLOCK_MACRO_ATTRIBUTES",
	KindBlockAttrsStart:       "BLOCK_ATTRS_START",
	KindBlockAttrName:         "BLOCK_ATTR_NAME",
	KindBlockAttrsEnd:         "BLOCK_ATTRS_END",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one typed span of the input. Tokens are immutable once produced;
// concatenating the Text of every token in a pass reproduces the input
// byte-exactly.
type Token struct {
	Kind  Kind
	Start int
	Text  string
}

func (t Token) Pos() position.RawPosition {
	return position.NewBasicPosition(t.Text, t.Start)
}

func (t Token) End() int {
	return t.Start + len(t.Text)
}

// String renders the token the way lexer dumps are usually compared,
// e.g. TEXT ('abc') with newlines escaped.
func (t Token) String() string {
	escaped := strings.ReplaceAll(t.Text, "\\", "\\\\")
	escaped = strings.ReplaceAll(escaped, "\n", "\\n")
	return fmt.Sprintf("%s ('%s')", t.Kind, escaped)
}

// Dump renders a token sequence one token per line.
func Dump(tokens []Token) string {
	lines := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		lines = append(lines, tok.String())
	}
	return strings.Join(lines, "\n")
}
