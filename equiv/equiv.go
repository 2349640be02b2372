// Package equiv compares two samples of generated strings.
//
// Comparison is a pair of set differences. Equal samples mean only that both languages
// agree within the sampled length window, nothing is proven outside of it.
package equiv

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/v2/sets/hashset"
)

// DefaultLimit is the number of differences per side shown by reports.
const DefaultLimit = 10

// Report holds the result of comparing sample A with sample B.
type Report struct {
	// OnlyInA contains sorted strings present in A and missing in B.
	OnlyInA []string

	// OnlyInB contains sorted strings present in B and missing in A.
	OnlyInB []string

	// Equal is set if both differences are empty.
	Equal bool
}

// Compare computes differences of a and b treated as sets. Blank entries are ignored.
func Compare(a, b []string) *Report {
	sa, sb := toSet(a), toSet(b)
	onlyA := sorted(sa.Difference(sb))
	onlyB := sorted(sb.Difference(sa))
	return &Report{
		OnlyInA: onlyA,
		OnlyInB: onlyB,
		Equal:   len(onlyA) == 0 && len(onlyB) == 0,
	}
}

// ParseSample splits newline-joined sample text into entries,
// entries are trimmed and blank lines are dropped.
func ParseSample(text string) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

func toSet(items []string) *hashset.Set[string] {
	result := hashset.New[string]()
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			result.Add(item)
		}
	}
	return result
}

func sorted(s *hashset.Set[string]) []string {
	result := s.Values()
	sort.Strings(result)
	return result
}

// Head returns at most limit first strings of each difference.
// Non-positive limit means no limit.
func (r *Report) Head(limit int) (onlyA, onlyB []string) {
	return head(r.OnlyInA, limit), head(r.OnlyInB, limit)
}

func head(items []string, limit int) []string {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// String returns a single line summary.
func (r *Report) String() string {
	if r.Equal {
		return "samples are equal"
	}
	return fmt.Sprintf("samples differ: %d only in A, %d only in B", len(r.OnlyInA), len(r.OnlyInB))
}
