package util

import "sort"

// Set holds distinct strings, mostly tickers and date keys
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s.Add(item)
	}
	return s
}

func (s Set) Length() int { return len(s) }

// Add reports whether item was new
func (s Set) Add(item string) bool {
	if s.Contains(item) {
		return false
	}
	s[item] = struct{}{}
	return true
}

func (s Set) Contains(item string) bool {
	_, ok := s[item]
	return ok
}

// List returns the members sorted ascending
func (s Set) List() []string {
	out := make([]string, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Strings(out)
	return out
}
