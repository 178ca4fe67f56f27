package plugin

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{"valid version", "1.2.3", Version{Major: 1, Minor: 2, Patch: 3}, false},
		{"zero version", "0.0.0", Version{}, false},
		{"current protocol", ProtocolVersion, Version{Major: 0, Minor: 1, Patch: 0}, false},
		{"missing patch", "1.2", Version{}, true},
		{"extra part", "1.2.3.4", Version{}, true},
		{"non-numeric major", "x.2.3", Version{}, true},
		{"non-numeric minor", "1.y.3", Version{}, true},
		{"non-numeric patch", "1.2.z", Version{}, true},
		{"empty string", "", Version{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestVersionString(t *testing.T) {
	v := Version{Major: 2, Minor: 10, Patch: 4}
	if got := v.String(); got != "2.10.4" {
		t.Errorf("String() = %q, want %q", got, "2.10.4")
	}
}

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name       string
		version    string
		compatible bool
		wantErr    bool
	}{
		{"exact match", "0.1.0", true, false},
		{"higher patch", "0.1.5", true, false},
		{"higher minor", "0.2.0", true, false},
		{"below minimum minor", "0.0.9", false, true},
		{"major mismatch", "1.0.0", false, true},
		{"unparseable", "not-a-version", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := IsCompatible(tt.version)
			if ok != tt.compatible {
				t.Errorf("IsCompatible(%q) = %v, want %v", tt.version, ok, tt.compatible)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("IsCompatible(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
			}
		})
	}
}
