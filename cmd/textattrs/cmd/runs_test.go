package cmd

import "testing"

func TestParseSpanSpec(t *testing.T) {
	tests := []struct {
		in        string
		wantStart int
		wantEnd   int
		wantName  string
		wantErr   bool
	}{
		{"0:4:keyword", 0, 4, "keyword", false},
		{"3:3:comment", 3, 3, "comment", false},
		{"10:20:a:b", 10, 20, "a:b", false},
		{"4:2:keyword", 0, 0, "", true},
		{"-1:2:keyword", 0, 0, "", true},
		{"x:2:keyword", 0, 0, "", true},
		{"0:y:keyword", 0, 0, "", true},
		{"0:4", 0, 0, "", true},
	}
	for _, tt := range tests {
		start, end, name, err := parseSpanSpec(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseSpanSpec(%q) succeeded, want error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseSpanSpec(%q): %v", tt.in, err)
			continue
		}
		if start != tt.wantStart || end != tt.wantEnd || name != tt.wantName {
			t.Errorf("parseSpanSpec(%q) = (%d, %d, %q), want (%d, %d, %q)",
				tt.in, start, end, name, tt.wantStart, tt.wantEnd, tt.wantName)
		}
	}
}
