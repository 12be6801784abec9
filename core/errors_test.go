package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	err := NewParseError(12, "constraint (0,1)", "constraint range needs (min,max,quant), got %d values", 2)
	want := `option descriptor line 12: constraint range needs (min,max,quant), got 2 values: "constraint (0,1)"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	noLine := &ParseError{Reason: "empty input"}
	if noLine.Error() != "option descriptor: empty input" {
		t.Errorf("Error() = %q", noLine.Error())
	}
}

func TestIsParseErr(t *testing.T) {
	pErr := NewParseError(1, "type", "missing option name")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"direct", pErr, true},
		{"wrapped", fmt.Errorf("generate: %w", pErr), true},
		{"other", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsParseErr(tt.err); got != tt.want {
				t.Errorf("IsParseErr() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckRequiredVersion(t *testing.T) {
	current := GeneratorVersion()
	if current == "" {
		t.Fatal("GeneratorVersion() is empty")
	}

	tests := []struct {
		constraint   string
		wantErr      bool
		wantMismatch bool
	}{
		{"", false, false},
		{">= 0.1", false, false},
		{"= " + current, false, false},
		{">= 99.0", true, true},
		{"< 0.0.1", true, true},
		{"not a version", true, false},
	}
	for _, tt := range tests {
		err := CheckRequiredVersion(tt.constraint)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckRequiredVersion(%q) error = %v, wantErr %v", tt.constraint, err, tt.wantErr)
			continue
		}
		if IsVersionMismatchErr(err) != tt.wantMismatch {
			t.Errorf("CheckRequiredVersion(%q) mismatch = %v, want %v", tt.constraint, IsVersionMismatchErr(err), tt.wantMismatch)
		}
	}
}
