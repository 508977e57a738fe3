// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

// Property is one key/value pair of a rendered page. Values are always
// pre-formatted strings; numbers and links never pass through raw.
type Property struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Properties is an insertion-ordered property list. Re-setting an
// existing key overwrites its value in place without moving it.
type Properties []Property

// Set stores value under key, preserving first-insertion order.
func (p *Properties) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Property{Key: key, Value: value})
}

// Get returns the value stored under key.
func (p Properties) Get(key string) (string, bool) {
	for _, prop := range p {
		if prop.Key == key {
			return prop.Value, true
		}
	}
	return "", false
}

// Keys returns the property keys in insertion order.
func (p Properties) Keys() []string {
	keys := make([]string, len(p))
	for i, prop := range p {
		keys[i] = prop.Key
	}
	return keys
}
