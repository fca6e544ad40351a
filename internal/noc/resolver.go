package noc

import (
	"fmt"
	"strings"
)

// DefaultFlagURL is the flag image template; %s is the lowercase geo code
const DefaultFlagURL = "https://flagcdn.com/w40/%s.png"

// Resolver infers committee codes and geographic codes. It holds private copies of
// its tables and never mutates them, so one Resolver can serve a whole run.
type Resolver struct {
	neutral  map[string]string
	codeGeo  map[string]string
	nameGeo  map[string]string
	nameCode map[string]string
	flagURL  string
}

// NewResolver builds a resolver from t. An empty flagURL uses DefaultFlagURL.
func NewResolver(t Tables, flagURL string) *Resolver {
	if flagURL == "" {
		flagURL = DefaultFlagURL
	}
	return &Resolver{
		neutral:  upperKeys(t.Neutral),
		codeGeo:  upperKeys(t.CodeGeo),
		nameGeo:  lookupKeys(t.NameGeo, strings.ToLower),
		nameCode: lookupKeys(t.NameCode, strings.ToUpper),
		flagURL:  flagURL,
	}
}

// NewDefaultResolver builds a resolver over the built-in tables overlaid with m
func NewDefaultResolver(m Mapping) *Resolver {
	return NewResolver(DefaultTables(m), "")
}

// Code returns the committee code listed for a name
func (r *Resolver) Code(name string) (string, bool) {
	key := LookupKey(name)
	if key == "" {
		return "", false
	}
	code, ok := r.nameCode[key]
	return code, ok && code != ""
}

// Geo resolves the geographic code of a committee. name may be empty.
//
// Neutral teams are checked first and a neutral team without a flag stops the
// search, so a later heuristic cannot give it one. Then come the code overrides,
// two-letter codes used as-is, and finally the name table tried with the name and
// then with the code.
func (r *Resolver) Geo(code, name string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(code))

	if geo, ok := r.neutral[upper]; ok {
		return geo, geo != ""
	}

	if geo, ok := r.codeGeo[upper]; ok && geo != "" {
		return geo, true
	}

	if len(upper) == 2 && isLetters(upper) {
		return strings.ToLower(upper), true
	}

	for _, candidate := range []string{name, code} {
		if key := LookupKey(candidate); key != "" {
			if geo, ok := r.nameGeo[key]; ok && geo != "" {
				return geo, true
			}
		}
	}

	return "", false
}

// FlagURL returns the flag image URL for a committee, or nil if it has no
// known geographic code
func (r *Resolver) FlagURL(code, name string) *string {
	geo, ok := r.Geo(code, name)
	if !ok {
		return nil
	}
	u := fmt.Sprintf(r.flagURL, geo)
	return &u
}

func isLetters(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
