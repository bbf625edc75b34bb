package format

import "testing"

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"html", HTML, false},
		{"csv", Csv, false},
		{"png", 0, true},
		{"HTML", 0, true},
	}
	for _, tt := range tests {
		got, err := UnmarshalText(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if Csv.Ext() != ".csv" || HTML.Ext() != ".html" {
		t.Fatalf("got extensions %q %q", Csv.Ext(), HTML.Ext())
	}
}
