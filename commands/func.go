package commands

import (
	"context"
	"reflect"
	"runtime"
	"strings"

	"golang.org/x/xerrors"

	"github.com/mado-framework/go-mado/framework/identifier"
	"github.com/mado-framework/go-mado/framework/mado"
)

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// Func adapts a plain typed Go function into a Command, the moral
// equivalent of stamping it with a #[command] attribute. Supported
// shapes are any combination of:
//
//	func([ctx context.Context][, args T]) [(R | error | (R, error))]
//
// where T is a struct or pointer to struct carrying JSON tags and R is
// any JSON-encodable value. The returned prototype is a zero value of T
// (nil when the function takes no args) suitable for RegisterWithArgs.
//
// There is no separate async shape: a function that wants to do slow
// work simply blocks, the protocol adapter already runs every dispatch
// on its own goroutine.
func Func(fn interface{}) (mado.Command, mado.CommandArgs, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func {
		return nil, nil, xerrors.Errorf("commands: %T is not a function", fn)
	}
	t := v.Type()

	var (
		takesCtx bool
		argType  reflect.Type
	)
	for i := 0; i < t.NumIn(); i++ {
		in := t.In(i)
		if i == 0 && in == ctxType {
			takesCtx = true
			continue
		}
		if argType != nil {
			return nil, nil, xerrors.Errorf("commands: function takes more than one argument struct")
		}
		structT := in
		if structT.Kind() == reflect.Ptr {
			structT = structT.Elem()
		}
		if structT.Kind() != reflect.Struct {
			return nil, nil, xerrors.Errorf("commands: argument type %s is not a struct or pointer to struct", in)
		}
		argType = in
	}

	switch t.NumOut() {
	case 0, 1:
		// value-only, error-only or nothing at all are all legal
	case 2:
		if t.Out(1) != errType {
			return nil, nil, xerrors.Errorf("commands: second return value of %s must be error", t)
		}
	default:
		return nil, nil, xerrors.Errorf("commands: function returns %d values, want at most (value, error)", t.NumOut())
	}

	cmd := &funcCommand{fn: v, takesCtx: takesCtx, argType: argType}
	if argType == nil {
		return cmd, nil, nil
	}
	structT := argType
	if structT.Kind() == reflect.Ptr {
		structT = structT.Elem()
	}
	return cmd, reflect.New(structT).Interface(), nil
}

// RegisterFunc adapts fn with Func and registers it in the default
// registry. An empty name derives the wire name from the function's Go
// name, so Greet registers as "greet" and GreetUser as "greet_user".
func RegisterFunc(name string, fn interface{}) error {
	cmd, args, err := Func(fn)
	if err != nil {
		return err
	}
	if name == "" {
		name = identifier.New(funcName(fn)).CommandName()
	}
	if args != nil {
		return RegisterWithArgs(name, cmd, args)
	}
	return Register(name, cmd)
}

func MustRegisterFunc(name string, fn interface{}) {
	if err := RegisterFunc(name, fn); err != nil {
		panic(err)
	}
}

type funcCommand struct {
	fn       reflect.Value
	takesCtx bool

	// argType is the declared parameter type (possibly a pointer),
	// args is the per-request decoded value. Resolve hands out copies
	// of this struct so args never crosses requests.
	argType reflect.Type
	args    reflect.Value
}

func (c *funcCommand) SetArgs(a mado.CommandArgs) error {
	if c.argType == nil {
		return nil
	}
	v := reflect.ValueOf(a)
	if !v.IsValid() || v.Kind() != reflect.Ptr {
		return xerrors.Errorf("commands: args must be a pointer, got %T", a)
	}
	if c.argType.Kind() == reflect.Ptr {
		if v.Type() != c.argType {
			return xerrors.Errorf("commands: args type %s does not match declared %s", v.Type(), c.argType)
		}
		c.args = v
		return nil
	}
	if v.Type().Elem() != c.argType {
		return xerrors.Errorf("commands: args type %s does not match declared %s", v.Type().Elem(), c.argType)
	}
	c.args = v.Elem()
	return nil
}

func (c *funcCommand) Apply(ctx context.Context) (interface{}, error) {
	var in []reflect.Value
	if c.takesCtx {
		in = append(in, reflect.ValueOf(ctx))
	}
	if c.argType != nil {
		args := c.args
		if !args.IsValid() {
			// absent body, invoke with a zero value
			args = reflect.New(c.argType).Elem()
			if c.argType.Kind() == reflect.Ptr {
				args = reflect.New(c.argType.Elem())
			}
		}
		in = append(in, args)
	}

	out := c.fn.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if isErrValue(out[0]) {
			return nil, asErr(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), asErr(out[1])
	}
}

func isErrValue(v reflect.Value) bool {
	return v.Type() == errType
}

func asErr(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

// funcName digs the bare Go identifier out of a runtime function name
// such as "pkg/path.Greet" or "pkg/path.(*Settings).Get-fm".
func funcName(fn interface{}) string {
	full := runtime.FuncForPC(reflect.ValueOf(fn).Pointer()).Name()
	full = strings.TrimSuffix(full, "-fm")
	if idx := strings.LastIndex(full, "."); idx >= 0 {
		full = full[idx+1:]
	}
	return full
}
