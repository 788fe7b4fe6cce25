package catalog

import (
	"regexp"
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// matcher resolves URLs against the catalog. The aho-corasick automaton
// only narrows the candidate set in one pass over the URL; resolution
// always walks candidates in catalog order so that the first declared
// pattern wins when several could match.
type matcher struct {
	hostMatcher *ahocorasick.Matcher
	hostOwner   []int // automaton term index -> catalog index
	exprs       []compiledExpr
}

type compiledExpr struct {
	catalogIndex int
	re           *regexp.Regexp
}

var defaultMatcher = newMatcher(patterns)

func newMatcher(pats []ToolPattern) *matcher {
	m := &matcher{}
	var terms []string
	for i, p := range pats {
		for _, host := range p.Hosts {
			terms = append(terms, strings.ToLower(host))
			m.hostOwner = append(m.hostOwner, i)
		}
		if p.Expr != "" {
			m.exprs = append(m.exprs, compiledExpr{
				catalogIndex: i,
				re:           regexp.MustCompile(`(?i)` + p.Expr),
			})
		}
	}
	m.hostMatcher = ahocorasick.NewStringMatcher(terms)
	return m
}

func (m *matcher) match(url string) (int, bool) {
	lowered := strings.ToLower(url)
	best := -1

	for _, term := range m.hostMatcher.MatchThreadSafe([]byte(lowered)) {
		if term < 0 || term >= len(m.hostOwner) {
			continue
		}
		if idx := m.hostOwner[term]; best == -1 || idx < best {
			best = idx
		}
	}
	for _, e := range m.exprs {
		if best != -1 && e.catalogIndex >= best {
			continue
		}
		if e.re.MatchString(lowered) {
			best = e.catalogIndex
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}

// Match classifies a URL against the catalog. The second return value is
// false when no pattern matches, which is a normal outcome for most URLs.
func Match(url string) (ToolPattern, bool) {
	idx, ok := defaultMatcher.match(url)
	if !ok {
		return ToolPattern{}, false
	}
	return patterns[idx], true
}
