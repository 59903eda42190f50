package luna

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"79927398713", true},
		{"4111111111111111", true},
		{"5555555555554444", true},
		{"4111111111111112", false},
		{"79927398710", false},
		{"1234a", false},
		{"", true},
	}
	for _, tt := range tests {
		if got := Validate(tt.number); got != tt.want {
			t.Errorf("Validate(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
