package powerinfo

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    BatteryStatus
		wantErr bool
	}{
		{name: "charging", text: "Charging", want: Charging},
		{name: "discharging with newline", text: "Discharging\n", want: Discharging},
		{name: "full with padding", text: "  Full \t\n", want: Full},
		{name: "unknown", text: "\nUnknown\n", want: Unknown},
		{name: "lowercase", text: "charging", wantErr: true},
		{name: "not charging", text: "Not charging\n", wantErr: true},
		{name: "empty", text: "", wantErr: true},
		{name: "whitespace only", text: " \n", wantErr: true},
		{name: "inner text", text: "Full!", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.text)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStatus) {
					t.Fatalf("ParseStatus(%q) error = %v, want ErrInvalidStatus", tt.text, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseStatusErrorIncludesText(t *testing.T) {
	_, err := ParseStatus("Not charging\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), `invalid battery status: "Not charging\n"`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestParseLevelRange(t *testing.T) {
	for i := 0; i <= 100; i++ {
		for _, format := range []string{"%d", "%d\n", " %d ", "\t%d\n\n"} {
			text := fmt.Sprintf(format, i)
			got, err := ParseLevel(text)
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", text, err)
			}
			if int(got) != i {
				t.Fatalf("ParseLevel(%q) = %d, want %d", text, got, i)
			}
		}
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, text := range []string{"", "\n", "abc", "42%", "-1", "4 2", "3.5", "256"} {
		if _, err := ParseLevel(text); !errors.Is(err, ErrInvalidLevel) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidLevel", text, err)
		}
	}
}

func TestBatteryStatusString(t *testing.T) {
	if got := Discharging.String(); got != "Discharging" {
		t.Errorf("Discharging.String() = %q", got)
	}
	if got := BatteryStatus(9).String(); got != "BatteryStatus(9)" {
		t.Errorf("BatteryStatus(9).String() = %q", got)
	}
}
