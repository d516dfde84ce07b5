package config

import (
	"errors"
	"testing"
)

func TestProjectKind(t *testing.T) {
	tests := []struct {
		name      string
		framework string
		want      Kind
		wantErr   bool
	}{
		{"django_exact", "Django", KindDjango, false},
		{"django_versioned", "Django 4.2", KindDjango, false},
		{"flask_lower", "flask", KindFlask, false},
		{"fastapi_mixed", "FastAPI (latest)", KindFastAPI, false},
		{"unknown", "Rails", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Project{Framework: tt.framework}.Kind()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Kind(%q): expected error", tt.framework)
				}
				if !errors.Is(err, ErrUnknownFramework) {
					t.Errorf("expected ErrUnknownFramework, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Kind(%q): %v", tt.framework, err)
			}
			if got != tt.want {
				t.Errorf("Kind(%q) = %v, want %v", tt.framework, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if KindDjango.String() != FrameworkDjango {
		t.Errorf("KindDjango.String() = %q", KindDjango.String())
	}
	if KindFastAPI.String() != FrameworkFastAPI {
		t.Errorf("KindFastAPI.String() = %q", KindFastAPI.String())
	}
}

func TestHasFeature(t *testing.T) {
	p := Project{Features: []string{FeatureAuth, FeatureDocker}}
	if !p.HasFeature(FeatureAuth) {
		t.Error("expected auth feature")
	}
	if p.HasFeature(FeatureGraphQL) {
		t.Error("did not expect graphql feature")
	}
}
