package errors

import (
	"strings"
	"testing"
)

func TestValidateClassName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "tooltip", false},
		{"valid with dash", "hoverlay-tooltip", false},
		{"valid with underscore", "tooltip_dark", false},
		{"valid leading underscore", "_private", false},
		{"valid leading dash", "-vendor", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 200), true},
		{"space", "two words", true},
		{"leading digit", "1tooltip", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"angle bracket", "foo<bar", true},
		{"quote", `foo"bar`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClassName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClassName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateClassList(t *testing.T) {
	if err := ValidateClassList([]string{"tooltip", "dark"}); err != nil {
		t.Errorf("valid list should pass, got %v", err)
	}
	if err := ValidateClassList([]string{"tooltip", "two words"}); err == nil {
		t.Error("invalid entry should fail the list")
	}
	if err := ValidateClassList(nil); err != nil {
		t.Errorf("empty list should pass, got %v", err)
	}
}

func TestValidateColorSpec(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"short hex", "#f00", false},
		{"long hex", "#ff0000", false},
		{"mixed case hex", "#AbCdEf", false},
		{"keyword", "steelblue", false},

		{"empty", "", true},
		{"missing hash", "ff0000", true},      // letters+digits, not a keyword
		{"bad hex length", "#ff00", true},
		{"injection attempt", "red;background:url(x)", true},
		{"keyword with space", "dark red", true},
		{"keyword too long", strings.Repeat("a", 40), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateColorSpec(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateColorSpec(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateScenarioPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid relative", "examples/basic.json", false},
		{"valid absolute", "/tmp/scenario.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 600), true},
		{"path traversal", "foo/../bar.json", true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateScenarioPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateScenarioPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
