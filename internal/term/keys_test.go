package term

import (
	"strings"
	"testing"
)

func TestReadEvent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Event
	}{
		{
			name:  "arrow keys",
			input: "\x1b[A\x1b[B",
			want:  []Event{{Key: KeyUp}, {Key: KeyDown}},
		},
		{
			name:  "enter as CR and LF",
			input: "\r\n",
			want:  []Event{{Key: KeyEnter}, {Key: KeyEnter}},
		},
		{
			name:  "printable runes",
			input: "rq",
			want:  []Event{{Key: KeyRune, Rune: 'r'}, {Key: KeyRune, Rune: 'q'}},
		},
		{
			name:  "multi-byte rune",
			input: "é",
			want:  []Event{{Key: KeyRune, Rune: 'é'}},
		},
		{
			name:  "trailing esc is a lone escape",
			input: "q\x1b",
			want:  []Event{{Key: KeyRune, Rune: 'q'}, {Key: KeyEsc}},
		},
		{
			name:  "esc before ordinary byte replays the byte",
			input: "\x1bz",
			want:  []Event{{Key: KeyEsc}, {Key: KeyRune, Rune: 'z'}},
		},
		{
			name:  "unbound csi final",
			input: "\x1b[C",
			want:  []Event{{Key: KeyUnknown}},
		},
		{
			name:  "control byte",
			input: "\x01",
			want:  []Event{{Key: KeyUnknown}},
		},
		{
			name:  "delete byte",
			input: "\x7f",
			want:  []Event{{Key: KeyUnknown}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			er := NewEventReader(strings.NewReader(tt.input))
			for i, want := range tt.want {
				got, err := er.ReadEvent()
				if err != nil {
					t.Fatalf("ReadEvent() #%d error = %v", i, err)
				}
				if got != want {
					t.Errorf("ReadEvent() #%d = %+v, want %+v", i, got, want)
				}
			}
			if _, err := er.ReadEvent(); err == nil {
				t.Error("ReadEvent() after stream end expected error, got nil")
			}
		})
	}
}
