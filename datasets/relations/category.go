package relations

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// UnknownCategory is the category of mids missing from a category map
const UnknownCategory = "Unknown"

// CategoryMap maps a mid to its category. It is read once and never modified.
type CategoryMap map[string]string

// ReadCategoryMap reads a category map file of the form <mid>\t<category>
func ReadCategoryMap(path string) (CategoryMap, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open category map")
	}
	defer file.Close()
	return ParseCategoryMap(file)
}

// ParseCategoryMap parses <mid>\t<category> lines. A mid without a category is not stored.
func ParseCategoryMap(r io.Reader) (CategoryMap, error) {
	m := make(CategoryMap)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLine)
	for scanner.Scan() {
		splits := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if len(splits) > 1 {
			m[splits[0]] = splits[1]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read category map")
	}
	return m, nil
}

// Lookup returns the category of the mid and whether it is mapped
func (c CategoryMap) Lookup(mid string) (string, bool) {
	category, ok := c[mid]
	return category, ok
}

// LookupOr returns the category of the mid, or def when it is not mapped
func (c CategoryMap) LookupOr(mid, def string) string {
	if category, ok := c[mid]; ok {
		return category
	}
	return def
}
