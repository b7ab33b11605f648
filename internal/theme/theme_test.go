package theme

import (
	"testing"

	"github.com/MUA122/IOT-Project/internal/models"
)

func TestDefault_Validates(t *testing.T) {
	th := Default()
	if err := th.Validate(); err != nil {
		t.Fatalf("default theme should validate: %v", err)
	}
	if th.BorderRadius != 14 {
		t.Errorf("BorderRadius = %d, want 14", th.BorderRadius)
	}
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	th := Theme{Palette: Palette{Primary: "#000000"}}
	th.ApplyDefaults()

	if th.Palette.Primary != "#000000" {
		t.Errorf("Primary = %s, want override kept", th.Palette.Primary)
	}
	if th.Palette.Secondary != "#ff7043" {
		t.Errorf("Secondary = %s, want default", th.Palette.Secondary)
	}
	if th.FontFamily == "" {
		t.Error("FontFamily should be defaulted")
	}
}

func TestValidate_RejectsBadColor(t *testing.T) {
	th := Default()
	th.Palette.Error = "red"
	if err := th.Validate(); err == nil {
		t.Fatal("expected error for non-hex color")
	}
}

func TestChipColor(t *testing.T) {
	th := Default()
	tests := []struct {
		chip models.ChipColor
		want string
	}{
		{models.ChipSuccess, "#4caf50"},
		{models.ChipWarning, "#ffb300"},
		{models.ChipError, "#ff5252"},
		{models.ChipDefault, "#9e9e9e"},
		{models.ChipColor("other"), "#9e9e9e"},
	}
	for _, tt := range tests {
		t.Run(string(tt.chip), func(t *testing.T) {
			if got := th.ChipColor(tt.chip); got != tt.want {
				t.Errorf("ChipColor(%s) = %s, want %s", tt.chip, got, tt.want)
			}
		})
	}
}
