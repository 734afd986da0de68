package resolve_test

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/Hounshell/argparse-sh/internal/argdef"
	"github.com/Hounshell/argparse-sh/internal/resolve"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func stringSpec(name string, flags ...string) *argdef.Spec {
	return &argdef.Spec{Name: name, Kind: argdef.String, Flags: flags}
}

func TestResolve_FlagPassWinsInDeclarationOrder(t *testing.T) {
	t.Parallel()

	// Both specs answer to --shared; the first declared wins.
	first := stringSpec("FIRST", "--shared")
	second := stringSpec("SECOND", "--shared")

	values, err := resolve.Resolve([]*argdef.Spec{first, second}, []string{"--shared", "x"}, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := resolve.Values{"FIRST": {"x"}}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_OrdinalOrderIsStable(t *testing.T) {
	t.Parallel()

	a := &argdef.Spec{Name: "A", Kind: argdef.String, Ordinals: []uint16{0}}
	b := &argdef.Spec{Name: "B", Kind: argdef.String, Ordinals: []uint16{1}}

	values, err := resolve.Resolve([]*argdef.Spec{a, b}, []string{"x", "y"}, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := resolve.Values{"A": {"x"}, "B": {"y"}}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_FlagMatchesDoNotAdvanceOrdinals(t *testing.T) {
	t.Parallel()

	flagged := stringSpec("FLAGGED", "--flagged")
	positional := &argdef.Spec{Name: "POS", Kind: argdef.String, Ordinals: []uint16{0}}

	tokens := []string{"--flagged", "fv", "pv"}

	values, err := resolve.Resolve([]*argdef.Spec{flagged, positional}, tokens, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := resolve.Values{"FLAGGED": {"fv"}, "POS": {"pv"}}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_CatchAllAdvancesOrdinals(t *testing.T) {
	t.Parallel()

	// No spec claims ordinal 0, so the first token falls to the catch-all;
	// that still burns position 0, and the second token reaches the spec
	// bound to ordinal 1.
	catchAll := &argdef.Spec{Name: "REST", Kind: argdef.String, CatchAll: true, Repeated: true}
	positional := &argdef.Spec{Name: "POS", Kind: argdef.String, Ordinals: []uint16{1}}

	values, err := resolve.Resolve([]*argdef.Spec{catchAll, positional}, []string{"x", "y"}, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := resolve.Values{"REST": {"x"}, "POS": {"y"}}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_NonRepeatedCatchAllAbsorbsOnce(t *testing.T) {
	t.Parallel()

	catchAll := &argdef.Spec{Name: "REST", Kind: argdef.String, CatchAll: true}

	_, err := resolve.Resolve([]*argdef.Spec{catchAll}, []string{"x", "y"}, discard())

	var userErr *argdef.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected UserError for second unmatched token, got %v", err)
	}
}

func TestResolve_RepeatedValuesAccumulateInArrivalOrder(t *testing.T) {
	t.Parallel()

	tag := &argdef.Spec{Name: "TAG", Kind: argdef.String, Flags: []string{"--tag"}, Repeated: true}

	tokens := []string{"--tag", "a", "--tag=b", "--tag", "c"}

	values, err := resolve.Resolve([]*argdef.Spec{tag}, tokens, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := resolve.Values{"TAG": {"a", "b", "c"}}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_NonRepeatedSpecStillAccumulates(t *testing.T) {
	t.Parallel()

	// Multiplicity is validation's job; resolution keeps every value.
	msg := stringSpec("MSG", "--msg")

	values, err := resolve.Resolve([]*argdef.Spec{msg}, []string{"--msg=a", "--msg=b"}, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if diff := cmp.Diff(resolve.Values{"MSG": {"a", "b"}}, values); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}

func TestResolve_ExtraTokenWithoutCatchAllFails(t *testing.T) {
	t.Parallel()

	msg := stringSpec("MSG", "--msg")

	_, err := resolve.Resolve([]*argdef.Spec{msg}, []string{"surprise"}, discard())

	var userErr *argdef.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected UserError, got %v", err)
	}
}

func TestResolve_CoercionFailurePropagates(t *testing.T) {
	t.Parallel()

	count := &argdef.Spec{Name: "COUNT", Kind: argdef.Integer, Flags: []string{"--count"}}

	_, err := resolve.Resolve([]*argdef.Spec{count}, []string{"--count", "five"}, discard())

	var userErr *argdef.UserError
	if !errors.As(err, &userErr) {
		t.Fatalf("expected UserError, got %v", err)
	}
}

func TestResolve_EmptyTokensYieldEmptyValues(t *testing.T) {
	t.Parallel()

	values, err := resolve.Resolve([]*argdef.Spec{stringSpec("MSG", "--msg")}, nil, discard())
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if len(values) != 0 {
		t.Errorf("values = %v, want empty", values)
	}
}
