package roster

import "strings"

// GenderAll disables the gender gate. The backend stores "Male"/"Female" but
// the comparison is case-insensitive either way.
const GenderAll = "All"

// Filter is the transient filter state owned by a roster view. The zero value
// matches everything. Filters persist across roster reloads and are reset only
// by explicit caller action.
type Filter struct {
	// Search is matched case-insensitively against the concatenation of all
	// of an entry's non-empty attribute values.
	Search string

	// Gender is one of "All", "Male", "Female". Empty behaves like "All".
	Gender string

	// Fields maps attribute name to a substring pattern. Entries lacking a
	// value for a constrained field are excluded.
	Fields map[string]string
}

// Match reports whether the entry passes every active gate. Gates are
// conjunctive: gender, then free-text search, then per-field patterns.
func (f Filter) Match(e Entry) bool {
	if f.Gender != "" && f.Gender != GenderAll && !strings.EqualFold(e.Gender, f.Gender) {
		return false
	}

	if f.Search != "" {
		if !strings.Contains(strings.ToLower(e.searchText()), strings.ToLower(f.Search)) {
			return false
		}
	}

	for field, pattern := range f.Fields {
		if pattern == "" {
			continue
		}
		value, ok := e.Field(field)
		if !ok || value == "" {
			return false
		}
		if !strings.Contains(strings.ToLower(value), strings.ToLower(pattern)) {
			return false
		}
	}
	return true
}

// searchText joins the entry's defined values with spaces for the free-text
// gate. The ID participates, matching how the source table searched every
// value of the record.
func (e Entry) searchText() string {
	values := make([]string, 0, 18)
	if e.ID != "" {
		values = append(values, e.ID)
	}
	for _, v := range e.attributeValues() {
		if v != "" {
			values = append(values, v)
		}
	}
	return strings.Join(values, " ")
}

// ApplyFilter returns the order-preserving subsequence of entries matching f.
// It is a pure function of its inputs: no sorting, no mutation, deterministic.
// Reapplying the same filter to its own output yields the same output.
func ApplyFilter(entries []Entry, f Filter) []Entry {
	if len(entries) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out
}
