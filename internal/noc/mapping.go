package noc

import (
	"strings"
)

// Mapping is the persisted lookup state: committee names to codes and committee
// codes to geographic codes. Name keys are stored as display names; lookups go
// through LookupKey.
type Mapping struct {
	NameToCode map[string]string
	CodeToGeo  map[string]string
}

// NewMapping returns an empty mapping
func NewMapping() Mapping {
	return Mapping{
		NameToCode: make(map[string]string),
		CodeToGeo:  make(map[string]string),
	}
}

// DefaultMapping returns the hand-authored override table
func DefaultMapping() Mapping {
	m := NewMapping()
	for _, c := range committees {
		for _, name := range c.names {
			m.NameToCode[name] = c.code
		}
		m.CodeToGeo[c.code] = c.geo
	}
	for name, code := range neutralNames {
		m.NameToCode[name] = code
	}
	return m
}

// Merge returns a new mapping holding m's entries overlaid with other's.
// Neither input is modified.
func (m Mapping) Merge(other Mapping) Mapping {
	out := NewMapping()
	for _, src := range []Mapping{m, other} {
		for k, v := range src.NameToCode {
			out.NameToCode[k] = v
		}
		for k, v := range src.CodeToGeo {
			out.CodeToGeo[k] = v
		}
	}
	return out
}

// Len returns the number of name and code entries
func (m Mapping) Len() (names, codes int) {
	return len(m.NameToCode), len(m.CodeToGeo)
}

// Tables is the resolver's input: the layered lookup tables in precedence order
type Tables struct {
	Neutral  map[string]string // code → geo; "" means known to have no flag
	CodeGeo  map[string]string // code → geo overrides
	NameGeo  map[string]string // name → geo for common spellings
	NameCode map[string]string // name → code
}

// DefaultTables returns the built-in tables overlaid with m
func DefaultTables(m Mapping) Tables {
	merged := DefaultMapping().Merge(m)
	return Tables{
		Neutral:  neutralTeams,
		CodeGeo:  merged.CodeToGeo,
		NameGeo:  nameGeo,
		NameCode: merged.NameToCode,
	}
}

func upperKeys(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[strings.ToUpper(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	return out
}

func lookupKeys(in map[string]string, value func(string) string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		key := LookupKey(k)
		if key == "" {
			continue
		}
		out[key] = value(v)
	}
	return out
}
