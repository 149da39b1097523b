package errors

import (
	"testing"
)

func TestValidateSceneID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid uuid", "3f2a9c4e-8c1d-4f6a-9b2e-1d5c7a8e9f01", false},
		{"valid simple", "login-screen", false},
		{"valid with underscore", "login_screen", false},
		{"valid with dot", "screens.login", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 200)), true},
		{"path traversal", "../escape", true},
		{"slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"null byte", "a\x00b", true},
		{"control char", "a\x01b", true},
		{"newline", "a\nb", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSceneID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSceneID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidSceneID) {
				t.Errorf("ValidateSceneID(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidateWidgetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "button", false},
		{"with dash", "submit-button", false},
		{"with underscore", "submit_button", false},
		{"with dot", "form.submit", false},
		{"with digits", "button2", false},
		{"leading underscore", "_root", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 300)), true},
		{"leading digit", "2button", true},
		{"leading dash", "-button", true},
		{"spaces", "my button", true},
		{"slash", "a/b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWidgetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWidgetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDiagramFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png"} {
		if err := ValidateDiagramFormat(f); err != nil {
			t.Errorf("ValidateDiagramFormat(%q) = %v, want nil", f, err)
		}
	}
	for _, f := range []string{"", "pdf", "jpeg", "DOT"} {
		err := ValidateDiagramFormat(f)
		if err == nil {
			t.Errorf("ValidateDiagramFormat(%q) should fail", f)
			continue
		}
		if !Is(err, ErrCodeInvalidFormat) {
			t.Errorf("ValidateDiagramFormat(%q) returned wrong error code: %v", f, err)
		}
	}
}

func TestValidateRenderScale(t *testing.T) {
	tests := []struct {
		name    string
		scale   float64
		wantErr bool
	}{
		{"unit", 1, false},
		{"fractional", 0.5, false},
		{"max", MaxRenderScale, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"too large", MaxRenderScale + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRenderScale(tt.scale)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRenderScale(%g) error = %v, wantErr %v", tt.scale, err, tt.wantErr)
			}
		})
	}
}
