package util

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

const DateLayout = "2006-01-02"

func TimePtr(t time.Time) *time.Time {
	return &t
}

func StringPtr(s string) *string {
	return &s
}

// StartOfDay drops the clock part of t, keeping
// the calendar day as seen in UTC
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func DateStr(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// SortedMapKeys returns the keys of a date-keyed
// map in ascending order. Keys are DateLayout
// strings so lexical order is chronological
func SortedMapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func MaxDate(dates []time.Time) (time.Time, bool) {
	if len(dates) == 0 {
		return time.Time{}, false
	}
	max := dates[0]
	for _, d := range dates[1:] {
		if d.After(max) {
			max = d
		}
	}
	return max, true
}

func Pprint(i interface{}) {
	bytes, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		fmt.Println(i)
		return
	}
	fmt.Println(string(bytes))
}
