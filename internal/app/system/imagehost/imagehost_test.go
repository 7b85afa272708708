package imagehost

import "testing"

func TestValidDataURI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"png", "data:image/png;base64,iVBORw0KGgo=", true},
		{"jpeg", "data:image/jpeg;base64,/9j/4AAQ", true},
		{"no prefix", "iVBORw0KGgo=", false},
		{"not base64", "data:image/png,rawbytes", false},
		{"not an image", "data:text/html;base64,PGh0bWw+", false},
		{"empty payload", "data:image/png;base64,", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDataURI(tt.input); got != tt.want {
				t.Errorf("ValidDataURI(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
