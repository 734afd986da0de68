package argdef_test

import (
	"strings"
	"testing"

	"github.com/Hounshell/argparse-sh/internal/argdef"
)

func TestDeriveName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag string
		want string
	}{
		{"--units", "UNITS"},
		{"--dry-run", "DRY_RUN"},
		{"-v", "V"},
		{"--wind_speed", "WIND_SPEED"},
		{"--!!weird--flag!!", "WEIRD_FLAG"},
		{"count2", "COUNT2"},
	}

	for _, tc := range tests {
		got := argdef.DeriveName(tc.flag)
		if got != tc.want {
			t.Errorf("DeriveName(%q) = %q, want %q", tc.flag, got, tc.want)
		}
	}
}

func TestSpec_HasOrdinal(t *testing.T) {
	t.Parallel()

	spec := &argdef.Spec{Name: "FILE", Kind: argdef.String, Ordinals: []uint16{0, 2}}

	if !spec.HasOrdinal(0) || !spec.HasOrdinal(2) {
		t.Error("expected ordinals 0 and 2 to be accepted")
	}

	if spec.HasOrdinal(1) {
		t.Error("expected ordinal 1 to be rejected")
	}
}

func TestSpec_DebugString(t *testing.T) {
	t.Parallel()

	def := "metric"
	spec := &argdef.Spec{
		Name:     "UNITS",
		Kind:     argdef.Choice,
		Flags:    []string{"--units", "-u"},
		Default:  &def,
		Required: true,
		Options: []argdef.ChoiceOption{
			{Value: "imperial"},
			{Value: "us", Alias: true, MapsTo: "imperial"},
		},
	}

	got := spec.DebugString()

	for _, want := range []string{
		"type: Choice",
		"name: UNITS",
		"--units, -u",
		"required",
		"default: metric",
		"us -> imperial",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DebugString() = %q, missing %q", got, want)
		}
	}
}
