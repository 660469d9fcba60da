package domain

import "net/url"

// QueryParams is an ordered mapping from parameter name to string value.
// Setting an existing name replaces its value in place.
type QueryParams struct {
	keys   []string
	values map[string]string
}

// NewQueryParams builds params from alternating name/value pairs.
// A trailing name without a value is ignored.
func NewQueryParams(pairs ...string) QueryParams {
	var p QueryParams
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}

// Set stores a value for name.
func (p *QueryParams) Set(name, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, ok := p.values[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.values[name] = value
}

// SetIfNotEmpty stores value only when it is non-empty.
func (p *QueryParams) SetIfNotEmpty(name, value string) {
	if value != "" {
		p.Set(name, value)
	}
}

// Get returns the value for name.
func (p QueryParams) Get(name string) (string, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Keys returns parameter names in insertion order.
func (p QueryParams) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Len returns the number of parameters.
func (p QueryParams) Len() int {
	return len(p.keys)
}

// Clone returns an independent copy.
func (p QueryParams) Clone() QueryParams {
	var c QueryParams
	for _, k := range p.keys {
		c.Set(k, p.values[k])
	}
	return c
}

// Map returns the parameters as a plain map.
func (p QueryParams) Map() map[string]string {
	out := make(map[string]string, len(p.keys))
	for _, k := range p.keys {
		out[k] = p.values[k]
	}
	return out
}

// Values returns the parameters as url.Values for query encoding.
func (p QueryParams) Values() url.Values {
	out := make(url.Values, len(p.keys))
	for _, k := range p.keys {
		out.Set(k, p.values[k])
	}
	return out
}
