// ref.go implements the non-owning read view over frame metadata.

package dictionary

import (
	"sort"
)

// Ref is a non-owning read view over the native metadata representation.
// The zero Ref behaves as an empty dictionary, which is how an absent
// metadata dictionary surfaces.
type Ref struct {
	entries map[string]string
}

// WrapRef wraps the native representation (as stored on a buffer) into a
// read view. A nil map is a valid input and yields an empty view.
func WrapRef(entries map[string]string) Ref {
	return Ref{entries: entries}
}

func (r Ref) Get(key string) (string, bool) {
	v, ok := r.entries[key]
	return v, ok
}

func (r Ref) Len() int {
	return len(r.entries)
}

func (r Ref) Keys() []string {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (r Ref) Each(callback func(key, value string) bool) {
	for _, k := range r.Keys() {
		if !callback(k, r.entries[k]) {
			return
		}
	}
}

// ToMap copies the entries out of the view.
func (r Ref) ToMap() map[string]string {
	m := make(map[string]string, len(r.entries))
	for k, v := range r.entries {
		m[k] = v
	}
	return m
}
