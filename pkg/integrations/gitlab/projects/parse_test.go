package projects

import (
	"testing"

	"github.com/matzehuels/lablist/pkg/errors"
)

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input   string
		want    Visibility
		wantErr bool
	}{
		{"public", VisibilityPublic, false},
		{"Internal", VisibilityInternal, false},
		{"  PRIVATE ", VisibilityPrivate, false},
		{"secret", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVisibility(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVisibility(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("ParseVisibility(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidInput)
			}
			if got != tt.want {
				t.Errorf("ParseVisibility(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOrderBy(t *testing.T) {
	for _, o := range OrderFields {
		got, err := ParseOrderBy(string(o))
		if err != nil {
			t.Errorf("ParseOrderBy(%q) error: %v", o, err)
		}
		if got != o {
			t.Errorf("ParseOrderBy(%q) = %q", o, got)
		}
	}

	if _, err := ParseOrderBy("stars"); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("ParseOrderBy(stars) error = %v, want INVALID_INPUT", err)
	}
}

func TestParseSort(t *testing.T) {
	if got, err := ParseSort("ASC"); err != nil || got != SortAsc {
		t.Errorf("ParseSort(ASC) = %q, %v", got, err)
	}
	if got, err := ParseSort("desc"); err != nil || got != SortDesc {
		t.Errorf("ParseSort(desc) = %q, %v", got, err)
	}
	if _, err := ParseSort("up"); err == nil {
		t.Error("ParseSort(up) should fail")
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		input   string
		want    Scope
		wantErr bool
	}{
		{"", ScopeMember, false},
		{"member", ScopeMember, false},
		{"Owned", ScopeOwned, false},
		{"visible", ScopeVisible, false},
		{"starred", ScopeStarred, false},
		{"all", ScopeAll, false},
		{"forks", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseScope(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScope(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseScope(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestScopeString(t *testing.T) {
	if got := ScopeMember.String(); got != "member" {
		t.Errorf("ScopeMember.String() = %q, want member", got)
	}
	if got := ScopeOwned.Resource(); got != "projects/owned" {
		t.Errorf("ScopeOwned.Resource() = %q", got)
	}
	if got := ScopeMember.Resource(); got != "projects" {
		t.Errorf("ScopeMember.Resource() = %q", got)
	}
}

func TestParseAcceptsEveryToken(t *testing.T) {
	for _, v := range Visibilities {
		if got, err := ParseVisibility(v.String()); err != nil || got != v {
			t.Errorf("ParseVisibility(%q) = %q, %v", v, got, err)
		}
	}
	for _, o := range OrderFields {
		if got, err := ParseOrderBy(o.String()); err != nil || got != o {
			t.Errorf("ParseOrderBy(%q) = %q, %v", o, got, err)
		}
	}
	for _, s := range Sorts {
		if got, err := ParseSort(s.String()); err != nil || got != s {
			t.Errorf("ParseSort(%q) = %q, %v", s, got, err)
		}
	}

	if len(Visibilities) != 3 || len(OrderFields) != 6 || len(Sorts) != 2 {
		t.Errorf("token lists = %d, %d, %d; want 3, 6, 2", len(Visibilities), len(OrderFields), len(Sorts))
	}
}
