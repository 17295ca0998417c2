package shared

import "testing"

func TestFormatDuration(t *testing.T) {
	tc := []struct {
		name   string
		millis int64
		want   string
	}{
		{name: "zero", millis: 0, want: "0:00"},
		{name: "under a minute", millis: 42_000, want: "0:42"},
		{name: "minutes and seconds", millis: 225_000, want: "3:45"},
		{name: "over an hour", millis: 3_725_000, want: "1:02:05"},
		{name: "negative clamps to zero", millis: -1000, want: "0:00"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatDuration(tt.millis)
			if got != tt.want {
				t.Errorf("FormatDuration(%d) = %v, want %v", tt.millis, got, tt.want)
			}
		})
	}
}

func TestGenerateID(t *testing.T) {
	a := GenerateID()
	b := GenerateID()

	if a == "" || b == "" {
		t.Fatal("expected non-empty IDs")
	}
	if a == b {
		t.Error("expected unique IDs")
	}
}
