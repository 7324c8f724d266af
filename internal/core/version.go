package core

import (
	"sort"

	debversion "github.com/knqyf263/go-deb-version"
)

// versionCache memoizes parsed version ids during one sort to avoid
// re-parsing each id on every comparison.
type versionCache struct {
	parsed map[string]debversion.Version
	failed map[string]struct{}
}

func newVersionCache() *versionCache {
	return &versionCache{
		parsed: map[string]debversion.Version{},
		failed: map[string]struct{}{},
	}
}

// version returns the parsed form of a version id. ok is false when the
// id does not parse (snapshot ids like "23w31a" may not).
func (c *versionCache) version(value string) (debversion.Version, bool) {
	if parsed, ok := c.parsed[value]; ok {
		return parsed, true
	}
	if _, ok := c.failed[value]; ok {
		return debversion.Version{}, false
	}
	parsed, err := debversion.NewVersion(value)
	if err != nil {
		c.failed[value] = struct{}{}
		return debversion.Version{}, false
	}
	c.parsed[value] = parsed
	return parsed, true
}

// SortVersionIDs orders installed version ids newest first. Release ids
// like "1.20.1" compare numerically; ids that do not parse as versions
// sort after parseable ones, lexicographically among themselves.
func SortVersionIDs(ids []string) {
	cache := newVersionCache()
	sort.SliceStable(ids, func(i, j int) bool {
		vi, oki := cache.version(ids[i])
		vj, okj := cache.version(ids[j])
		switch {
		case oki && okj:
			return vi.Compare(vj) > 0
		case oki:
			return true
		case okj:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
}
