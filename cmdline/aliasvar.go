package cmdline

// NameValueTable is the shared shape of the alias table and the
// variable table: two independent name-to-value mappings with
// identical behavior. Insertion order is preserved for listing.
type NameValueTable struct {
	order []string
	value map[string]string
}

func newNameValueTable() *NameValueTable {
	return &NameValueTable{value: make(map[string]string)}
}

// Get returns the value for name and whether it is set.
func (t *NameValueTable) Get(name string) (string, bool) {
	v, ok := t.value[name]
	return v, ok
}

// Set creates or updates name. An empty value is treated the same as
// any other value here; callers that want "empty deletes" semantics
// (AliasAdd/VariableAdd) call Delete themselves.
func (t *NameValueTable) Set(name, value string) {
	if _, exists := t.value[name]; !exists {
		t.order = append(t.order, name)
	}
	t.value[name] = value
}

// Delete removes name. A no-op if unknown.
func (t *NameValueTable) Delete(name string) {
	if _, ok := t.value[name]; !ok {
		return
	}
	delete(t.value, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Names returns the registered names in insertion order.
func (t *NameValueTable) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Reset drops every entry.
func (t *NameValueTable) Reset() {
	t.order = nil
	t.value = make(map[string]string)
}
