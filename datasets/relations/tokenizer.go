package relations

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/neurlang/relscorer/hash"
)

const (
	// StartToken always opens a token sequence
	StartToken = "<start>"
	// EntityToken replaces one or more adjacent mentions
	EntityToken = "[entity]"
)

// ErrMalformedMention is returned for a bracketed token which is not [mid|text]
var ErrMalformedMention = errors.New("malformed mention")

// Tokens is a normalized question. It is never modified after Tokenize builds it.
type Tokens []string

// QID identifies a question by its token sequence
type QID uint64

// Key returns an order sensitive key usable in maps
func (t Tokens) Key() string {
	return strings.Join(t, "\x00")
}

// QID hashes the token sequence. Two questions which tokenize identically share a QID.
func (t Tokens) QID() QID {
	return QID(hash.StringsHash64(t))
}

// Mention is an inline [mid|text] entity mention
type Mention struct {
	ID   string
	Text string
}

// ParseMention parses a whitespace separated piece of a question. The boolean
// reports whether the piece is bracketed at all.
func ParseMention(piece string) (m Mention, ok bool, err error) {
	if len(piece) == 0 || piece[0] != '[' || piece[len(piece)-1] != ']' {
		return m, false, nil
	}
	var inner string
	if len(piece) >= 2 {
		inner = piece[1 : len(piece)-1]
	}
	parts := strings.Split(inner, "|")
	if len(parts) != 2 {
		return m, true, errors.Wrapf(ErrMalformedMention, "%q", piece)
	}
	return Mention{ID: parts[0], Text: parts[1]}, true, nil
}

// Tokenize turns a question string including [mid|text] mentions into question tokens.
// It prepends a <start> token and replaces mentions with [entity]. Punctuation is ignored.
func Tokenize(question string) (Tokens, error) {
	tokens, _, err := TokenizeMentions(question)
	return tokens, err
}

// TokenizeMentions is Tokenize which also returns the ids of all mentions in order
func TokenizeMentions(question string) (tokens Tokens, mids []string, err error) {
	tokens = Tokens{StartToken}
	for _, piece := range strings.Split(question, " ") {
		m, ok, err := ParseMention(piece)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			mids = append(mids, m.ID)
			// always at least <start>
			if tokens[len(tokens)-1] != EntityToken {
				tokens = append(tokens, EntityToken)
			}
			continue
		}
		if !isAlnum(piece) {
			continue
		}
		tokens = append(tokens, strings.ToLower(piece))
	}
	return tokens, mids, nil
}

// isAlnum reports whether s is non-empty and consists of letters and numbers only
func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
