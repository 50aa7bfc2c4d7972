package matrix

import "testing"

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a    Version
		b    Version
		want int
	}{
		{
			name: "equal",
			a:    "3.6",
			b:    "3.6",
			want: 0,
		},
		{
			name: "minor difference",
			a:    "3.6",
			b:    "3.7",
			want: -1,
		},
		{
			name: "major difference",
			a:    "3",
			b:    "2.4",
			want: 1,
		},
		{
			name: "numeric not lexicographic",
			a:    "3.10",
			b:    "3.9",
			want: 1,
		},
		{
			name: "missing components are zero",
			a:    "3",
			b:    "3.0",
			want: 0,
		},
		{
			name: "longer is newer when prefix equal",
			a:    "2.4.1",
			b:    "2.4",
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("Compare(%q, %q) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestVersionComponents(t *testing.T) {
	for _, v := range []Version{"3", "3.6", "2.4.1", "0.0"} {
		if _, err := v.components(); err != nil {
			t.Errorf("version %q should parse: %v", v, err)
		}
	}
	for _, v := range []Version{"", " ", "3.x", "v3.6", "3..6", "-1", "3.-1"} {
		if _, err := v.components(); err == nil {
			t.Errorf("version %q should not parse", v)
		}
	}
}
