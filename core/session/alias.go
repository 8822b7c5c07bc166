package session

import (
	"sort"
	"strings"
)

// AliasTable maps alias names to replacement command templates. Resolution
// performs exactly one substitution pass; the produced line is never looked
// up again, so mutually referencing aliases can't loop.
type AliasTable struct {
	entries map[string]string
}

func NewAliasTable() *AliasTable {
	return &AliasTable{entries: make(map[string]string)}
}

// Define adds an alias, overwriting any existing definition of name.
func (t *AliasTable) Define(name, template string) {
	t.entries[name] = template
}

// Remove deletes an alias and reports whether it existed.
func (t *AliasTable) Remove(name string) bool {
	_, ok := t.entries[name]
	delete(t.entries, name)
	return ok
}

// Get looks up the template for name.
func (t *AliasTable) Get(name string) (string, bool) {
	template, ok := t.entries[name]
	return template, ok
}

// Names returns the defined alias names in sorted order.
func (t *AliasTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of defined aliases.
func (t *AliasTable) Len() int {
	return len(t.entries)
}

// Resolve expands the line's first token if it names an alias. The rest of
// the line is the verbatim substring after the first run of whitespace
// following the name; it is appended to the template with a single space
// and is not re-tokenized. Lines whose first token is not an alias are
// returned unchanged.
func (t *AliasTable) Resolve(line string) string {
	tokens := Split(line)
	if len(tokens) == 0 {
		return line
	}
	template, ok := t.entries[tokens[0]]
	if !ok {
		return line
	}

	rest := ""
	trimmed := strings.TrimLeft(line, " \t")
	if i := strings.IndexAny(trimmed, " \t"); i >= 0 {
		rest = strings.TrimLeft(trimmed[i:], " \t")
	}

	if rest == "" {
		return template
	}
	return template + " " + rest
}
