package relations

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// ErrMalformedLine is returned for a line which is not four tab separated fields
var ErrMalformedLine = errors.New("malformed examples line")

// maxLine bounds a single examples line
const maxLine = 16 * 1024 * 1024

// Example pairs a question with one relation. Whether it is positive or negative
// depends on the collection it is stored in.
type Example struct {
	Question Tokens
	Relation Relation

	// Mentions holds the mids mentioned in the question, in order.
	// It takes no part in the question identity.
	Mentions []string
}

// ReadExamples reads question - relation examples from a text file
func ReadExamples(path string) (pos, neg []Example, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open examples")
	}
	defer file.Close()
	return ParseExamples(file)
}

// ParseExamples reads lines of the form
//
//	question \t unused \t positive relations \t negative relations
//
// and emits one positive example per positive relation and one negative
// example per negative relation, keeping file order in both.
func ParseExamples(r io.Reader) (pos, neg []Example, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	var n int
	for scanner.Scan() {
		n++
		cols := strings.Split(scanner.Text(), "\t")
		if len(cols) != 4 {
			return nil, nil, errors.Wrapf(ErrMalformedLine, "line %d: %d fields", n, len(cols))
		}
		question, mids, err := TokenizeMentions(cols[0])
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", n)
		}
		for _, rel := range ParseRelations(cols[2]) {
			pos = append(pos, Example{Question: question, Relation: rel, Mentions: mids})
		}
		for _, rel := range ParseRelations(cols[3]) {
			neg = append(neg, Example{Question: question, Relation: rel, Mentions: mids})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "read examples")
	}
	return pos, neg, nil
}
