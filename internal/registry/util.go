package registry

import (
	"sort"
	"strings"
	"time"
)

type strset map[string]struct{}

func (s strset) add(v string) {
	s[v] = struct{}{}
}

func (s strset) has(v string) bool {
	_, ok := s[v]
	return ok
}

func (s strset) hasAll(vs []string) bool {
	for _, v := range vs {
		if !s.has(v) {
			return false
		}
	}
	return true
}

func (s strset) slice() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func toSet(xs []string) strset {
	m := make(strset, len(xs))
	for _, x := range xs {
		m.add(x)
	}
	return m
}

// norm trims, drops empties and de-duplicates while keeping order.
func norm(xs []string) []string {
	out := make([]string, 0, len(xs))
	seen := make(strset, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(x)
		if x == "" || seen.has(x) {
			continue
		}
		seen.add(x)
		out = append(out, x)
	}
	return out
}

func filterIDs(ids []ProcID, keep func(ProcID) bool) []ProcID {
	dst := ids[:0]
	for _, id := range ids {
		if keep(id) {
			dst = append(dst, id)
		}
	}
	return dst
}

func now() time.Time {
	return time.Now().UTC()
}
