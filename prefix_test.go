package units

import "testing"

func TestLookupPrefix(t *testing.T) {
	tests := []struct {
		symbol string
		name   string
		factor float64
	}{
		{"k", "kilo", 1e3},
		{"M", "mega", 1e6},
		{"da", "deca", 10},
		{"μ", "micro", 1e-6},
		{"u", "micro", 1e-6},
		{"µ", "micro", 1e-6},
		{"q", "quecto", 1e-30},
	}
	for _, tt := range tests {
		p, ok := LookupPrefix(tt.symbol)
		if !ok {
			t.Errorf("LookupPrefix(%q) not found", tt.symbol)
			continue
		}
		if p.Name != tt.name || p.Factor != tt.factor {
			t.Errorf("LookupPrefix(%q) = %+v, want %s %g", tt.symbol, p, tt.name, tt.factor)
		}
	}
	if p, _ := LookupPrefix("u"); p.Symbol != "μ" {
		t.Errorf("alias u resolved to symbol %q, want μ", p.Symbol)
	}
	if _, ok := LookupPrefix("x"); ok {
		t.Error("LookupPrefix(x) found")
	}
}

func TestSplitPrefix(t *testing.T) {
	tests := []struct {
		symbol string
		want   []string // prefix symbol + "|" + rest
	}{
		{"km", []string{"k|m"}},
		{"dam", []string{"da|m", "d|am"}},
		{"mm", []string{"m|m"}},
		{"m", nil},
		{"x", nil},
		{"us", []string{"μ|s"}},
	}
	for _, tt := range tests {
		var got []string
		for _, s := range splitPrefix(tt.symbol) {
			got = append(got, s.prefix.Symbol+"|"+s.rest)
		}
		if len(got) != len(tt.want) {
			t.Errorf("splitPrefix(%q) = %v, want %v", tt.symbol, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitPrefix(%q) = %v, want %v", tt.symbol, got, tt.want)
				break
			}
		}
	}
}
