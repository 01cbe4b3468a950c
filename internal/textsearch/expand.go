package textsearch

import (
	"regexp"
	"strconv"
	"strings"
)

// Expand matches re against span and substitutes the captured groups into
// replacement. When re does not match span the template is returned as-is.
func Expand(re *regexp.Regexp, span, replacement string) string {
	if re == nil {
		return replacement
	}
	groups := re.FindStringSubmatch(span)
	if groups == nil {
		return replacement
	}
	return ExpandGroups(groups, replacement)
}

// ExpandGroups replaces $k in replacement with groups[k]. The longest run of
// digits naming an existing group wins, so with three groups "$12" is group 1
// followed by a literal "2". A '$' not followed by a valid group is kept.
func ExpandGroups(groups []string, replacement string) string {
	if !strings.Contains(replacement, "$") {
		return replacement
	}

	var b strings.Builder
	for i := 0; i < len(replacement); i++ {
		c := replacement[i]
		if c != '$' {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(replacement) && replacement[j] >= '0' && replacement[j] <= '9' {
			j++
		}
		for ; j > i+1; j-- {
			k, err := strconv.Atoi(replacement[i+1 : j])
			if err == nil && k < len(groups) {
				break
			}
		}
		if j == i+1 {
			b.WriteByte(c)
			continue
		}

		k, _ := strconv.Atoi(replacement[i+1 : j])
		b.WriteString(groups[k])
		i = j - 1
	}
	return b.String()
}
