package mode

import "testing"

func TestUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"d", Demo, false},
		{"s", Sweep, false},
		{"", 0, true},
		{"v", 0, true},
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
		if !tt.wantErr && got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}
