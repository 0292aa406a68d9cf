package crypto

import "testing"

func TestConstantTimeCompareBytes(t *testing.T) {
	tests := []struct {
		name string
		a    []byte
		b    []byte
		want bool
	}{
		{"equal slices", []byte{1, 2, 3}, []byte{1, 2, 3}, true},
		{"different slices", []byte{1, 2, 3}, []byte{1, 2, 4}, false},
		{"different lengths", []byte{1, 2, 3}, []byte{1, 2}, false},
		{"both empty", nil, nil, true},
		{"one empty", []byte{1}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConstantTimeCompareBytes(tt.a, tt.b); got != tt.want {
				t.Errorf("ConstantTimeCompareBytes(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
