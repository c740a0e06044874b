package soundboard

import (
	"testing"
	"time"
)

func TestReadLineNormalizesTerminators(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  []string
	}{
		{
			name:  "bare newline",
			chunk: "OK\nNEXT\n",
			want:  []string{"OK", "NEXT"},
		},
		{
			name:  "carriage return before newline",
			chunk: "OK\r\nNEXT\r\n",
			want:  []string{"OK", "NEXT"},
		},
		{
			name:  "carriage return after newline",
			chunk: "OK\n\rNEXT\n\r",
			want:  []string{"OK", "NEXT"},
		},
		{
			name:  "empty line",
			chunk: "\nNEXT\n",
			want:  []string{"", "NEXT"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := NewMockPort()
			port.AddChunk(tt.chunk)
			ch := lineChannel{port: port, timeout: 10 * time.Millisecond}

			for i, want := range tt.want {
				line, err := ch.readLine()
				if err != nil {
					t.Fatalf("line %d: unexpected error: %v", i, err)
				}
				if string(line) != want {
					t.Errorf("line %d = %q, want %q", i, line, want)
				}
			}
		})
	}
}

func TestReadLineQuietTimeout(t *testing.T) {
	port := NewMockPort()
	ch := lineChannel{port: port, timeout: 10 * time.Millisecond}

	line, err := ch.readLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != 0 {
		t.Errorf("line = %q, want empty", line)
	}
}

func TestReadLineCapsAtBuffer(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	port := NewMockPort()
	port.AddChunk(string(long) + "\n")
	ch := lineChannel{port: port, timeout: 10 * time.Millisecond}

	line, err := ch.readLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != len(ch.buf) {
		t.Errorf("line length = %d, want %d", len(line), len(ch.buf))
	}

	// The overflow stays buffered and becomes the next line.
	line, err = ch.readLine()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(line) != 100-len(ch.buf) {
		t.Errorf("overflow length = %d, want %d", len(line), 100-len(ch.buf))
	}
}

func TestSendDrainsStaleInput(t *testing.T) {
	port := NewMockPort()
	ch := lineChannel{port: port, timeout: 10 * time.Millisecond}

	if err := ch.send([]byte("L\n")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if port.drains != 1 {
		t.Errorf("drains = %d, want 1", port.drains)
	}
	if len(port.writes) != 1 || string(port.writes[0]) != "L\n" {
		t.Errorf("writes = %q, want [\"L\\n\"]", port.writes)
	}
}
