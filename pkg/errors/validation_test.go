package errors

import (
	"strings"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "block.json", false},
		{"nested", "testdata/blocks/if.yaml", false},
		{"unicode", "blöcke/print.toml", false},
		{"empty", "", true},
		{"null byte", "block\x00.json", true},
		{"newline", "block\n.json", true},
		{"too long", strings.Repeat("a", 501), true},
		{"at limit", strings.Repeat("a", 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidatePath(%q) code = %s, want %s", tt.path, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		allowed []string
		wantErr bool
	}{
		{"exact", "print.json", []string{"json", "yaml"}, false},
		{"case insensitive", "print.YAML", []string{"json", "yaml"}, false},
		{"toml only", "shapes.toml", []string{"toml"}, false},
		{"not allowed", "print.xml", []string{"json", "yaml"}, true},
		{"no extension", "print", []string{"json"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.path, tt.allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateExtension(%q) code = %s, want %s", tt.path, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	allowed := []string{"svg", "json", "dot", "nav", "png", "pdf"}
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"single", []string{"svg"}, false},
		{"all", allowed, false},
		{"empty", nil, false},
		{"unknown", []string{"gif"}, true},
		{"mixed", []string{"svg", "gif"}, true},
		{"case sensitive", []string{"SVG"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormats(tt.formats, allowed...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidFormat) {
				t.Errorf("ValidateFormats(%v) code = %s, want %s", tt.formats, GetCode(err), ErrCodeInvalidFormat)
			}
		})
	}
}
