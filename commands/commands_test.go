package commands

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/xerrors"

	"github.com/mado-framework/go-mado/framework/mado"
	test "github.com/mado-framework/go-mado/framework/test_helper"
)

type dummyCmd struct{ tag string }

func (_ *dummyCmd) Apply(context.Context) (interface{}, error) {
	return nil, nil
}

type dummyArgs struct {
	Name string `json:"name"`
}

func Test_Commands_Register_TwiceSameNameRaisesError(t *testing.T) {
	assertErrEql := test.H(t).ErrEql
	r := NewRegistry()
	err := r.Register("dummy", &dummyCmd{})
	assertErrEql(err, nil)
	err = r.Register("dummy", &dummyCmd{})
	test.H(t).NotNil(err)
	if !xerrors.Is(err, ErrAlreadyRegistered) {
		t.Fatalf("wanted ErrAlreadyRegistered, got %q", err)
	}
}

func Test_Commands_Register_EmptyNameRaisesError(t *testing.T) {
	r := NewRegistry()
	err := r.Register("", &dummyCmd{})
	test.H(t).NotNil(err)
}

func Test_Commands_Resolve_UnknownNameRaisesError(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("nope")
	test.H(t).NotNil(err)
	if !xerrors.Is(err, ErrNotFound) {
		t.Fatalf("wanted ErrNotFound, got %q", err)
	}
}

func Test_Commands_Resolve_ReturnsRegisteredCommand(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("dummy", &dummyCmd{tag: "original"}); err != nil {
		t.Fatal(err)
	}
	cmd, err := r.Resolve("dummy")
	test.H(t).IsNil(err)
	test.H(t).TypeEql(cmd, &dummyCmd{})
	test.H(t).StringEql(cmd.(*dummyCmd).tag, "original")
}

func Test_Commands_Resolve_ReturnsFreshCopyPerCall(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("dummy", &dummyCmd{}); err != nil {
		t.Fatal(err)
	}
	first, _ := r.Resolve("dummy")
	second, _ := r.Resolve("dummy")
	if first.(*dummyCmd) == second.(*dummyCmd) {
		t.Fatal("expected distinct command instances per resolve")
	}
}

func Test_Commands_ArgsFor(t *testing.T) {
	r := NewRegistry()
	if err := r.RegisterWithArgs("dummy", &dummyCmd{}, dummyArgs{}); err != nil {
		t.Fatal(err)
	}
	args, ok := r.ArgsFor("dummy")
	test.H(t).BoolEql(ok, true)
	test.H(t).TypeEql(args, &dummyArgs{})

	_, ok = r.ArgsFor("unknown")
	test.H(t).BoolEql(ok, false)
}

func Test_Commands_List_SortsNames(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid/point"} {
		if err := r.Register(name, &dummyCmd{}); err != nil {
			t.Fatal(err)
		}
	}
	got := r.(mado.ListingRegistry).List()
	test.H(t).InterfaceEql(got, []string{"alpha", "mid/point", "zeta"})
}

func Test_Commands_MustRegister_PanicsOnDuplicate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	name := fmt.Sprintf("must-register-%d", 1)
	MustRegister(name, &dummyCmd{})
	MustRegister(name, &dummyCmd{})
}
