package wizard

import "testing"

func TestValidateProjectName(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"plain name", "my-project", false},
		{"surrounding spaces", "  demo  ", false},
		{"empty", "", true},
		{"spaces only", "   ", true},
		{"forward slash", "a/b", true},
		{"backslash", `a\b`, true},
		{"parent reference", "..", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateProjectName(tc.input)
			if (err != nil) != tc.wantErr {
				t.Errorf("validateProjectName(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
		})
	}
}
