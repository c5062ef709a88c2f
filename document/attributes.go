package document

// Attr is a single attribute key/value pair. Value is the decoded value
// (entity references already resolved).
type Attr struct {
	Key   string
	Value string
}

// Attributes is an ordered attribute list with unique keys.
// The zero value is an empty list ready to use.
type Attributes []Attr

// Len returns the number of attributes.
func (a Attributes) Len() int {
	return len(a)
}

// Index returns the position of key, or -1.
func (a Attributes) Index(key string) int {
	for i := range a {
		if a[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the value for key and whether it was present.
func (a Attributes) Get(key string) (string, bool) {
	if i := a.Index(key); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

// Has reports whether key is present.
func (a Attributes) Has(key string) bool {
	return a.Index(key) >= 0
}

// Keys returns the keys in order.
func (a Attributes) Keys() []string {
	keys := make([]string, len(a))
	for i := range a {
		keys[i] = a[i].Key
	}
	return keys
}

// Snapshot returns a copy of the pairs. Mutating the list afterwards does not
// affect the snapshot.
func (a Attributes) Snapshot() []Attr {
	if len(a) == 0 {
		return nil
	}
	out := make([]Attr, len(a))
	copy(out, a)
	return out
}

// Set stores value under key. An existing key keeps its position;
// a new key is appended.
func (a *Attributes) Set(key, value string) {
	if i := a.Index(key); i >= 0 {
		(*a)[i].Value = value
		return
	}
	*a = append(*a, Attr{Key: key, Value: value})
}

// Remove deletes key and reports whether it was present.
func (a *Attributes) Remove(key string) bool {
	i := a.Index(key)
	if i < 0 {
		return false
	}
	*a = append((*a)[:i], (*a)[i+1:]...)
	return true
}

// Rename changes oldKey to newKey in place, keeping its position and value.
// It reports false without changing anything when oldKey is missing or
// newKey is already taken by another attribute.
func (a *Attributes) Rename(oldKey, newKey string) bool {
	i := a.Index(oldKey)
	if i < 0 {
		return false
	}
	if oldKey == newKey {
		return true
	}
	if a.Has(newKey) {
		return false
	}
	(*a)[i].Key = newKey
	return true
}
