package cli

import "testing"

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		width   float64
		height  float64
		wantErr bool
	}{
		{in: "20x30", width: 20, height: 30},
		{in: "24.5x36", width: 24.5, height: 36},
		{in: "8X10", width: 8, height: 10},
		{in: " 16 x 20 ", width: 16, height: 20},
		{in: "20", wantErr: true},
		{in: "20x30x40", wantErr: true},
		{in: "widexhigh", wantErr: true},
		{in: "20x", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseSize(%q) = %gx%g, want error", tt.in, w, h)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseSize(%q) error = %v", tt.in, err)
			}
			if w != tt.width || h != tt.height {
				t.Errorf("parseSize(%q) = %gx%g, want %gx%g", tt.in, w, h, tt.width, tt.height)
			}
		})
	}
}
