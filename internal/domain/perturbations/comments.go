package perturbations

import (
	"strings"

	"strata.dev/pkg/strata/internal/domain/lexer"
	m "strata.dev/pkg/strata/internal/model"
)

// RemoveComments deletes every comment.
func RemoveComments(in Input) string {
	return removeComments(in, func(lexer.Token) bool { return true })
}

// RemoveDocComments deletes documentation comments only.
func RemoveDocComments(in Input) string {
	return removeComments(in, func(tok lexer.Token) bool { return isDoc(tok, in.Dialect) })
}

// RemoveInlineComments deletes every comment that is not documentation.
func RemoveInlineComments(in Input) string {
	return removeComments(in, func(tok lexer.Token) bool { return !isDoc(tok, in.Dialect) })
}

func isDoc(tok lexer.Token, d m.Dialect) bool {
	switch tok.Kind {
	case lexer.TokenBlockComment:
		return d.IsDocBlock(tok.Text)
	case lexer.TokenLineComment:
		return d.IsDocLine(tok.Text)
	default:
		return false
	}
}

// removeComments drops the comments selected by remove. Whitespace around a
// run of removed comments is merged: lines left blank disappear, and the
// neighbours stay separated when they would otherwise fuse.
func removeComments(in Input, remove func(lexer.Token) bool) string {
	tokens := lexer.Tokenize(in.Text, in.Scan)

	var b strings.Builder
	b.Grow(len(in.Text))

	var (
		prev      *lexer.Token
		segments  []string
		multiline bool
	)

	end := 0

	for i := range tokens {
		tok := &tokens[i]
		ws := in.Text[end:tok.Start]
		end = tok.End

		if tok.IsComment() && remove(*tok) {
			segments = append(segments, ws)
			multiline = multiline || strings.Contains(tok.Text, "\n")

			continue
		}

		if segments != nil {
			ws = joinRemoved(append(segments, ws), multiline, prev, tok)
			segments, multiline = nil, false
		}

		b.WriteString(ws)
		b.WriteString(tok.Text)

		prev = tok
	}

	ws := in.Text[end:]
	if segments != nil {
		ws = joinRemoved(append(segments, ws), multiline, prev, nil)
	}

	b.WriteString(ws)

	return b.String()
}

// joinRemoved merges the whitespace segments that surrounded removed comments
// into the whitespace left between prev and next.
func joinRemoved(segments []string, multiline bool, prev, next *lexer.Token) string {
	const mark = "\x00"

	joined := strings.Join(segments, mark)
	lines := strings.Split(joined, "\n")

	if len(lines) == 1 {
		switch {
		case prev == nil || next == nil:
			return ""
		case multiline:
			// a block comment spanning lines separated the neighbours by a line break
			return "\n"
		}

		for _, s := range segments {
			if s != "" {
				return s
			}
		}

		if fusible(prev.Text, next.Text) {
			return " "
		}

		return ""
	}

	kept := make([]string, 0, len(lines))

	for k, line := range lines {
		marked := strings.Contains(line, mark)
		clean := strings.ReplaceAll(line, mark, "")

		switch {
		case k == 0 && prev != nil:
			if marked {
				clean = trimTail(clean)
			}
		case k == len(lines)-1 && next != nil:
			if marked {
				clean = line[:strings.Index(line, mark)]
			}
		case marked && strings.TrimSpace(clean) == "":
			continue
		}

		kept = append(kept, clean)
	}

	return strings.Join(kept, "\n")
}
