package protocol

import (
	"bytes"
	"testing"
)

func TestBuildPlayTrackCmd(t *testing.T) {
	tests := []struct {
		name    string
		track   int
		want    string
		wantErr bool
		errMsg  string
	}{
		{
			name:  "track zero",
			track: 0,
			want:  "#0\n",
		},
		{
			name:  "single digit track",
			track: 3,
			want:  "#3\n",
		},
		{
			name:  "multi digit track",
			track: 42,
			want:  "#42\n",
		},
		{
			name:  "highest track",
			track: 255,
			want:  "#255\n",
		},
		{
			name:    "negative track",
			track:   -1,
			wantErr: true,
			errMsg:  "track must be 0-255",
		},
		{
			name:    "track above range",
			track:   256,
			wantErr: true,
			errMsg:  "track must be 0-255",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildPlayTrackCmd(tt.track)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(frame) != tt.want {
				t.Errorf("frame = %q, want %q", frame, tt.want)
			}
		})
	}
}

func TestBuildPlayFileCmd(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "plain name",
			fileName: "T01NEXT0OGG",
			want:     "PT01NEXT0OGG\n",
		},
		{
			name:     "space padded name",
			fileName: "T01     WAV",
			want:     "PT01     WAV\n",
		},
		{
			name:     "short name",
			fileName: "BOOT",
			want:     "PBOOT\n",
		},
		{
			name:     "empty name",
			fileName: "",
			wantErr:  true,
			errMsg:   "name cannot be empty",
		},
		{
			name:     "name too long",
			fileName: "TOOLONGNAME1",
			wantErr:  true,
			errMsg:   "name must be at most 11 characters",
		},
		{
			name:     "embedded newline",
			fileName: "BAD\nNAME",
			wantErr:  true,
			errMsg:   "non-printable byte 0x0A",
		},
		{
			name:     "embedded tab",
			fileName: "BAD\tNAME",
			wantErr:  true,
			errMsg:   "non-printable byte 0x09",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildPlayFileCmd(tt.fileName)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if string(frame) != tt.want {
				t.Errorf("frame = %q, want %q", frame, tt.want)
			}
		})
	}
}
