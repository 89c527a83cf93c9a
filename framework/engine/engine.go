package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mado-framework/go-mado/framework/mado"
)

type Error struct {
	Op  string
	Err error
	Msg string
}

func (e Error) Error() string {
	return fmt.Sprintf("engine: op: %q err: %q msg: %q", e.Op, e.Err, e.Msg)
}

func (e Error) Unwrap() error {
	return e.Err
}

func New(r mado.ResolveFn) *Engine {
	return &Engine{resolver: r, logger: mado.NoopLogger{}, clock: time.Now}
}

// Engine owns the dispatch path between a raw (name, body) pair arriving
// off the wire and the JSON bytes of the response. It holds no state of
// its own beyond its collaborators and is safe for concurrent use, the
// registry behind the resolver is never mutated once serving starts.
type Engine struct {
	resolver  mado.ResolveFn
	logger    mado.Logger
	clock     func() time.Time
	observers []mado.Observer
}

// SetLogger replaces the default no-op logger. Must be called before
// the engine starts serving.
func (e *Engine) SetLogger(l mado.Logger) {
	e.logger = l
}

// Observe adds an observer notified after every invocation. Must be
// called before the engine starts serving.
func (e *Engine) Observe(o mado.Observer) {
	e.observers = append(e.observers, o)
}

// Apply resolves the named command, invokes it with the decoded body
// and marshals whatever comes back to JSON. Every failure mode
// (unknown name, body decode, the command itself, result encoding)
// surfaces as an error here; the protocol adapter owns turning those
// into the uniform error envelope, the engine never writes one itself.
//
// A command returning nil yields the JSON literal null, mirroring a
// unit-returning function on the front end's side.
func (e *Engine) Apply(ctx context.Context, name string, body []byte) ([]byte, error) {

	spnApply, ctx := opentracing.StartSpanFromContext(ctx, "engine.Apply")
	spnApply.SetTag("command.name", name)
	defer spnApply.Finish()

	if e.resolver == nil {
		return nil, errors.New("resolver not defined, please check config")
	}

	began := e.clock()

	callable, err := e.resolver(ctx, name, body)
	if err != nil {
		e.notify(name, began, err)
		return nil, errors.Wrap(err, "can't resolve command")
	}

	result, err := callable(ctx)
	if err != nil {
		spnApply.LogKV("event", "error", "error.object", err)
		e.notify(name, began, err)
		return nil, errors.Wrap(err, "error from command")
	}

	b, err := json.Marshal(result)
	if err != nil {
		err = Error{"marshal-result", err, fmt.Sprintf("command %q returned an unencodable value", name)}
		e.notify(name, began, err)
		return nil, err
	}

	e.logger.Debugf("engine: applied %q (%d byte response)", name, len(b))
	e.notify(name, began, nil)
	return b, nil
}

func (e *Engine) notify(name string, began time.Time, err error) {
	if len(e.observers) == 0 {
		return
	}
	inv := mado.Invocation{
		Name:     name,
		Began:    began,
		Duration: e.clock().Sub(began),
		Err:      err,
	}
	for _, o := range e.observers {
		o.CommandInvoked(inv)
	}
}
