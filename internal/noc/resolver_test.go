package noc

import (
	"testing"
)

func TestResolver_Geo(t *testing.T) {
	r := NewDefaultResolver(NewMapping())

	tests := []struct {
		name    string
		code    string
		country string
		wantGeo string
		wantOK  bool
	}{
		{name: "code override", code: "GER", country: "Germany", wantGeo: "de", wantOK: true},
		{name: "code override lowercase input", code: "sui", wantGeo: "ch", wantOK: true},
		{name: "two letter code", code: "FR", wantGeo: "fr", wantOK: true},
		{name: "name table", code: "", country: "Russia", wantGeo: "ru", wantOK: true},
		{name: "name used as code", code: "Scotland", country: "Scotland", wantGeo: "gb-sct", wantOK: true},
		{name: "neutral team has no flag", code: "AIN", country: "Individual Neutral Athletes", wantOK: false},
		{name: "neutral beats name table", code: "ROC", country: "ROC", wantOK: false},
		{name: "unknown", code: "XYZ", country: "Atlantis", wantOK: false},
		{name: "empty", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo, ok := r.Geo(tt.code, tt.country)
			if ok != tt.wantOK {
				t.Fatalf("Geo(%q, %q) ok = %v, want %v", tt.code, tt.country, ok, tt.wantOK)
			}
			if geo != tt.wantGeo {
				t.Errorf("Geo(%q, %q) = %q, want %q", tt.code, tt.country, geo, tt.wantGeo)
			}
		})
	}
}

func TestResolver_GeoPrecedence(t *testing.T) {
	r := NewResolver(Tables{
		Neutral: map[string]string{"NTR": ""},
		CodeGeo: map[string]string{"AB": "zz", "OVR": "ov"},
		NameGeo: map[string]string{"NTR": "nt", "Overland": "xx"},
	}, "")

	if geo, ok := r.Geo("NTR", "NTR"); ok || geo != "" {
		t.Errorf("neutral null override should win over name table, got %q, %v", geo, ok)
	}
	if geo, _ := r.Geo("AB", ""); geo != "zz" {
		t.Errorf("code override should win over two-letter rule, got %q", geo)
	}
	if geo, _ := r.Geo("OVR", "Overland"); geo != "ov" {
		t.Errorf("code override should win over name table, got %q", geo)
	}
	if geo, _ := r.Geo("QQQ", "Overland"); geo != "xx" {
		t.Errorf("name table should resolve unknown codes, got %q", geo)
	}
}

func TestResolver_NeutralWithFlag(t *testing.T) {
	r := NewResolver(Tables{Neutral: map[string]string{"ANA": "RU"}}, "")

	geo, ok := r.Geo("ANA", "")
	if !ok || geo != "ru" {
		t.Errorf("Geo() = %q, %v, want ru, true", geo, ok)
	}
}

func TestResolver_Idempotent(t *testing.T) {
	r := NewDefaultResolver(NewMapping())

	inputs := [][2]string{{"NOR", "Norway"}, {"ROC", "ROC"}, {"", "The Bahamas"}, {"XYZ", "Nowhere"}}
	for _, in := range inputs {
		geo1, ok1 := r.Geo(in[0], in[1])
		geo2, ok2 := r.Geo(in[0], in[1])
		if geo1 != geo2 || ok1 != ok2 {
			t.Errorf("Geo(%q, %q) not stable: (%q, %v) then (%q, %v)", in[0], in[1], geo1, ok1, geo2, ok2)
		}
	}
}

func TestResolver_Code(t *testing.T) {
	r := NewDefaultResolver(Mapping{
		NameToCode: map[string]string{"Atlantis": "atl"},
	})

	tests := []struct {
		name     string
		wantCode string
		wantOK   bool
	}{
		{"Italy", "ITA", true},
		{" Italy* ", "ITA", true},
		{"The Bahamas", "BAH", true},
		{"Bahamas", "BAH", true},
		{"Cote d'Ivoire", "CIV", true},
		{"Individual Neutral Athletes", "AIN", true},
		{"Atlantis", "ATL", true},
		{"Nowhere", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := r.Code(tt.name)
			if ok != tt.wantOK || code != tt.wantCode {
				t.Errorf("Code(%q) = %q, %v, want %q, %v", tt.name, code, ok, tt.wantCode, tt.wantOK)
			}
		})
	}
}

func TestResolver_MappingOverridesBuiltins(t *testing.T) {
	r := NewDefaultResolver(Mapping{
		CodeToGeo: map[string]string{"GER": "XX"},
	})

	if geo, _ := r.Geo("GER", ""); geo != "xx" {
		t.Errorf("Geo(GER) = %q, want mapping override xx", geo)
	}
}

func TestResolver_FlagURL(t *testing.T) {
	r := NewResolver(Tables{CodeGeo: map[string]string{"ITA": "it"}}, "https://flags.test/%s.svg")

	u := r.FlagURL("ITA", "Italy")
	if u == nil || *u != "https://flags.test/it.svg" {
		t.Errorf("FlagURL(ITA) = %v, want https://flags.test/it.svg", u)
	}
	if u := r.FlagURL("XYZ", ""); u != nil {
		t.Errorf("FlagURL(XYZ) = %q, want nil", *u)
	}

	def := NewResolver(Tables{}, "")
	if u := def.FlagURL("IT", ""); u == nil || *u != "https://flagcdn.com/w40/it.png" {
		t.Errorf("default FlagURL = %v", u)
	}
}

func TestResolver_DoesNotShareInputTables(t *testing.T) {
	tables := Tables{CodeGeo: map[string]string{"ITA": "it"}}
	r := NewResolver(tables, "")

	tables.CodeGeo["ITA"] = "xx"

	if geo, _ := r.Geo("ITA", ""); geo != "it" {
		t.Errorf("resolver picked up a later table change: %q", geo)
	}
}

func TestMapping_Merge(t *testing.T) {
	a := Mapping{
		NameToCode: map[string]string{"Italy": "ITA"},
		CodeToGeo:  map[string]string{"ITA": "it", "GER": "de"},
	}
	b := Mapping{
		NameToCode: map[string]string{"Norway": "NOR"},
		CodeToGeo:  map[string]string{"GER": "xx"},
	}

	merged := a.Merge(b)

	if merged.NameToCode["Italy"] != "ITA" || merged.NameToCode["Norway"] != "NOR" {
		t.Errorf("merged names = %v", merged.NameToCode)
	}
	if merged.CodeToGeo["GER"] != "xx" {
		t.Errorf("later mapping should win, got %q", merged.CodeToGeo["GER"])
	}
	if a.CodeToGeo["GER"] != "de" {
		t.Error("Merge modified its receiver")
	}
	names, codes := merged.Len()
	if names != 2 || codes != 2 {
		t.Errorf("Len() = %d, %d, want 2, 2", names, codes)
	}
}

func TestDefaultMapping(t *testing.T) {
	m := DefaultMapping()

	if m.NameToCode["Germany"] != "GER" {
		t.Errorf("Germany = %q, want GER", m.NameToCode["Germany"])
	}
	if m.CodeToGeo["SUI"] != "ch" {
		t.Errorf("SUI = %q, want ch", m.CodeToGeo["SUI"])
	}
	for code, geo := range m.CodeToGeo {
		if !IsCode(code) {
			t.Errorf("invalid code key %q", code)
		}
		if geo == "" {
			t.Errorf("code %q has empty geo", code)
		}
	}
}
