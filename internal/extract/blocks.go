package extract

import "regexp"

// classTagRe matches the class-tag assignment that opens an attachment
// definition. It is anchored: it must be the first thing after the block's
// opening brace (whitespace aside).
var classTagRe = regexp.MustCompile(`^_class\s*=\s*"Attachment"`)

// ScanBlocks finds every attachment definition block in a vmdl document and
// returns the block bodies (outer braces stripped) in order of appearance.
//
// A block opens with "{" followed, after arbitrary whitespace including
// newlines, by `_class = "Attachment"`. Blocks are bounded with a
// depth-counting brace scanner rather than a non-greedy match, so nested
// braces inside a block do not truncate it.
func ScanBlocks(doc string) []string {
	var blocks []string
	for i := 0; i < len(doc); i++ {
		if doc[i] != '{' {
			continue
		}
		if !opensAttachment(doc[i+1:]) {
			continue
		}
		end, ok := matchBrace(doc, i)
		if !ok {
			// Unterminated block; nothing after it can be well-formed.
			break
		}
		blocks = append(blocks, doc[i+1:end])
		i = end
	}
	return blocks
}

// opensAttachment reports whether rest (the text just past an opening brace)
// begins with the attachment class tag.
func opensAttachment(rest string) bool {
	i := 0
	for i < len(rest) && isSpace(rest[i]) {
		i++
	}
	return classTagRe.MatchString(rest[i:])
}

// matchBrace returns the index of the brace closing the block opened at
// doc[open], counting depth: push on '{', pop on '}'.
func matchBrace(doc string, open int) (int, bool) {
	depth := 0
	for i := open; i < len(doc); i++ {
		switch doc[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
