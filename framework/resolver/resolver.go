package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"

	"github.com/mado-framework/go-mado/framework/mado"
)

type Error struct {
	Op  string
	Err error
}

func (e Error) Error() string {
	return fmt.Sprintf("resolver: op: %q err: %q", e.Op, e.Err)
}

// Unwrap exposes the underlying error so callers can classify failures
// (unknown name vs. malformed body) with errors.Is/As.
func (e Error) Unwrap() error {
	return e.Err
}

type resolver struct {
	registry mado.Registry
}

func New(registry mado.Registry) mado.Resolver {
	return &resolver{registry}
}

// Resolve maps a wire command name and raw JSON body onto a callable
// command function. The name has already been extracted from the URI by
// the protocol adapter; the body is the untouched request payload.
//
// The registry lookup hands back a fresh command instance, so decoding
// the body into the command's registered args prototype and infusing it
// with SetArgs mutates per-request state only. A body sent to a command
// that declares no args is ignored rather than rejected, commands which
// take no arguments must be callable with an empty or absent body.
func (r *resolver) Resolve(ctx context.Context, name string, body []byte) (mado.CommandFunc, error) {

	spnResolve, ctx := opentracing.StartSpanFromContext(ctx, "resolver.Resolve")
	spnResolve.SetTag("command.name", name)
	defer spnResolve.Finish()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, Error{"parse-name", fmt.Errorf("no command name in request")}
	}

	spnLookup := opentracing.StartSpan("look up command", opentracing.ChildOf(spnResolve.Context()))
	defer spnLookup.Finish()
	cmd, err := r.registry.Resolve(name)
	if err != nil {
		err = Error{"cmd-lookup", err}
		spnLookup.LogKV("event", "error", "error.object", err)
		return nil, err
	}
	spnLookup.Finish()

	if args, ok := r.registry.ArgsFor(name); ok {
		cmdWithArgs, ok := cmd.(mado.CommandWithArgs)
		if !ok {
			return nil, Error{"cast-cmd-with-args", fmt.Errorf("args registered, but command does not implement CommandWithArgs")}
		}
		if len(body) > 0 {
			spnUnmarshal := opentracing.StartSpan("unmarshal json body", opentracing.ChildOf(spnResolve.Context()))
			defer spnUnmarshal.Finish()
			if err := json.Unmarshal(body, args); err != nil {
				err = Error{"json-unmarshal", err}
				spnUnmarshal.LogKV("event", "error", "error.object", err)
				return nil, err
			}
			spnUnmarshal.Finish()
		}
		if err := cmdWithArgs.SetArgs(args); err != nil {
			return nil, Error{"assign-args", err}
		}
	}

	return cmd.Apply, nil
}
