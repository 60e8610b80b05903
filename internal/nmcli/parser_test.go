package nmcli

import (
	"errors"
	"testing"
)

func TestParseScan(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		want     []string // SSIDs in scan order
		wantErr  bool
		wantLine string
	}{
		{
			name:   "two networks",
			output: "HEADER\nAA:BB SSID_ONE more cols\nCC:DD SSID_TWO\n",
			want:   []string{"SSID_ONE", "SSID_TWO"},
		},
		{
			name:   "ssid ends at the next whitespace run",
			output: "HEADER\nAA:BB net5 WPA2 85\n",
			want:   []string{"net5"},
		},
		{
			name:   "header only is an empty scan",
			output: "IN-USE SSID MODE\n",
			want:   nil,
		},
		{
			name:   "empty output",
			output: "",
			want:   nil,
		},
		{
			name:     "line shorter than the ssid offset",
			output:   "HEADER\nAA:B\n",
			wantErr:  true,
			wantLine: "AA:B",
		},
		{
			name:     "line with only the prefix",
			output:   "HEADER\nAA:BB \n",
			wantErr:  true,
			wantLine: "AA:BB ",
		},
		{
			name:     "blank line between entries",
			output:   "HEADER\nAA:BB SSID_ONE\n\nCC:DD SSID_TWO\n",
			wantErr:  true,
			wantLine: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scan, err := ParseScan(tt.output)

			if tt.wantErr {
				if err == nil {
					t.Fatal("ParseScan() expected error, got nil")
				}
				var perr *Error
				if !errors.As(err, &perr) {
					t.Fatalf("ParseScan() error = %v, want *Error", err)
				}
				if perr.Kind != KindParse {
					t.Errorf("error kind = %v, want %v", perr.Kind, KindParse)
				}
				if perr.Line != tt.wantLine {
					t.Errorf("error line = %q, want %q", perr.Line, tt.wantLine)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseScan() error = %v", err)
			}
			if len(scan.Networks) != len(tt.want) {
				t.Fatalf("parsed %d networks, want %d", len(scan.Networks), len(tt.want))
			}
			for i, ssid := range tt.want {
				if scan.Networks[i].SSID != ssid {
					t.Errorf("network #%d = %q, want %q", i, scan.Networks[i].SSID, ssid)
				}
			}
		})
	}
}

func TestParseScanKeepsHeaderAndRawLines(t *testing.T) {
	scan, err := ParseScan("IN-USE SSID SIGNAL\nAA:BB SSID_ONE 82\n")
	if err != nil {
		t.Fatalf("ParseScan() error = %v", err)
	}
	if scan.Header != "IN-USE SSID SIGNAL" {
		t.Errorf("header = %q, want the first line verbatim", scan.Header)
	}
	if scan.Networks[0].Raw != "AA:BB SSID_ONE 82" {
		t.Errorf("raw line = %q, want the data line verbatim", scan.Networks[0].Raw)
	}
}
