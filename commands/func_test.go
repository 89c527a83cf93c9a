package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mado-framework/go-mado/framework/mado"
	test "github.com/mado-framework/go-mado/framework/test_helper"
)

type greetArgs struct {
	Name string `json:"name"`
}

type greetReply struct {
	Message string `json:"message"`
}

func greet(args greetArgs) greetReply {
	return greetReply{Message: fmt.Sprintf("Hello, %s!", args.Name)}
}

func Test_Func_AdaptsTypedFunction(t *testing.T) {
	cmd, proto, err := Func(greet)
	test.H(t).IsNil(err)
	test.H(t).TypeEql(proto, &greetArgs{})

	cwa, ok := cmd.(mado.CommandWithArgs)
	test.H(t).BoolEql(ok, true)
	if err := cwa.SetArgs(&greetArgs{Name: "Ada"}); err != nil {
		t.Fatal(err)
	}
	res, err := cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(res, greetReply{Message: "Hello, Ada!"})
}

func Test_Func_NoArgsNoReturn(t *testing.T) {
	var called bool
	cmd, proto, err := Func(func() { called = true })
	test.H(t).IsNil(err)
	if proto != nil {
		t.Fatalf("wanted no args prototype, got %T", proto)
	}
	res, err := cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	if res != nil {
		t.Fatalf("wanted nil result, got %v", res)
	}
	test.H(t).BoolEql(called, true)
}

func Test_Func_ContextAndErrorShapes(t *testing.T) {
	boom := errors.New("boom")
	cmd, _, err := Func(func(ctx context.Context) error {
		if ctx == nil {
			t.Fatal("expected a context")
		}
		return boom
	})
	test.H(t).IsNil(err)
	_, err = cmd.Apply(context.Background())
	test.H(t).ErrEql(err, boom)
}

func Test_Func_ValueAndErrorShape(t *testing.T) {
	cmd, proto, err := Func(func(ctx context.Context, args greetArgs) (greetReply, error) {
		return greetReply{Message: "hi " + args.Name}, nil
	})
	test.H(t).IsNil(err)
	test.H(t).TypeEql(proto, &greetArgs{})
	if err := cmd.(mado.CommandWithArgs).SetArgs(&greetArgs{Name: "Lovelace"}); err != nil {
		t.Fatal(err)
	}
	res, err := cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(res, greetReply{Message: "hi Lovelace"})
}

func Test_Func_ZeroArgsWhenSetArgsNeverCalled(t *testing.T) {
	cmd, _, err := Func(greet)
	test.H(t).IsNil(err)
	res, err := cmd.Apply(context.Background())
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(res, greetReply{Message: "Hello, !"})
}

func Test_Func_RejectsInvalidShapes(t *testing.T) {
	invalid := []interface{}{
		42,
		"not a function",
		func(a, b greetArgs) {},
		func(n int) {},
		func() (int, int) { return 0, 0 },
		func() (int, error, error) { return 0, nil, nil },
	}
	for i, fn := range invalid {
		if _, _, err := Func(fn); err == nil {
			t.Errorf("case %d: expected an error for %T", i, fn)
		}
	}
}

func Test_RegisterFunc_DerivesNameFromFunction(t *testing.T) {
	if err := RegisterFunc("", greet); err != nil {
		t.Fatal(err)
	}
	cmd, err := Resolve("greet")
	test.H(t).IsNil(err)
	test.H(t).NotNil(cmd)
	args, ok := ArgsFor("greet")
	test.H(t).BoolEql(ok, true)
	test.H(t).TypeEql(args, &greetArgs{})
}
