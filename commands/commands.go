package commands

import (
	"reflect"
	"sort"

	"golang.org/x/xerrors"

	"github.com/mado-framework/go-mado/framework/mado"
)

func NewRegistry() mado.Registry {
	return &registry{
		// name:entry
		m: make(map[string]entry),
	}
}

var DefaultRegistry = NewRegistry()

// Register stores cmd in the default registry under the given wire
// name. Registration is part of process initialization, either from an
// init function colocated with the command or from an explicit
// top-level initializer; a second registration under the same name is a
// configuration error and is rejected rather than silently shadowing.
func Register(name string, cmd mado.Command) error {
	return DefaultRegistry.Register(name, cmd)
}

// RegisterWithArgs additionally stores a zero-valued prototype of the
// command's argument struct. The registry keeps only the reflect.Type
// and constructs a fresh instance per request with ArgsFor.
func RegisterWithArgs(name string, cmd mado.Command, args mado.CommandArgs) error {
	return DefaultRegistry.RegisterWithArgs(name, cmd, args)
}

// MustRegister is Register for init functions, where an error return
// has nowhere to go and a half-populated registry must not be allowed
// to start serving.
func MustRegister(name string, cmd mado.Command) {
	if err := Register(name, cmd); err != nil {
		panic(err)
	}
}

func MustRegisterWithArgs(name string, cmd mado.Command, args mado.CommandArgs) {
	if err := RegisterWithArgs(name, cmd, args); err != nil {
		panic(err)
	}
}

func Resolve(name string) (mado.Command, error) {
	return DefaultRegistry.Resolve(name)
}

func ArgsFor(name string) (mado.CommandArgs, bool) {
	return DefaultRegistry.ArgsFor(name)
}

// List enumerates the registered wire names in sorted order.
func List() []string {
	return DefaultRegistry.(mado.ListingRegistry).List()
}

type entry struct {
	cmd  mado.Command
	args reflect.Type
}

type registry struct {
	m map[string]entry
}

func (r *registry) Register(name string, cmd mado.Command) error {
	if name == "" {
		return xerrors.New("commands: can't register a command under an empty name")
	}
	if _, exists := r.m[name]; exists {
		return xerrors.Errorf("can't register command %s under %q: %w", reflect.TypeOf(cmd), name, ErrAlreadyRegistered)
	}
	r.m[name] = entry{cmd: cmd}
	return nil
}

func (r *registry) RegisterWithArgs(name string, cmd mado.Command, args mado.CommandArgs) error {
	if err := r.Register(name, cmd); err != nil {
		return err
	}
	e := r.m[name]
	e.args = toType(args)
	r.m[name] = e
	return nil
}

// Resolve looks up the command registered under name and returns a
// fresh shallow copy of it. Handing back a copy means per-request
// argument state set through SetArgs can never race between concurrent
// requests, and the registered value stays pristine for the process
// lifetime.
func (r *registry) Resolve(name string) (mado.Command, error) {
	e, exists := r.m[name]
	if !exists {
		return nil, xerrors.Errorf("no command registered with name %q: %w", name, ErrNotFound)
	}
	return clone(e.cmd), nil
}

// ArgsFor constructs a new zero value of the argument type registered
// for name using the reflect package. A pointer to that type is
// returned so it can be unmarshalled into directly.
func (r *registry) ArgsFor(name string) (mado.CommandArgs, bool) {
	e, exists := r.m[name]
	if !exists || e.args == nil {
		return nil, false
	}
	return reflect.New(e.args).Interface(), true
}

func (r *registry) List() []string {
	var names []string
	for name := range r.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clone returns a fresh copy of a registered command value. Commands
// are conventionally pointers to structs so SetArgs can take a pointer
// receiver; for those a new struct is allocated and the registered
// fields (typically closed-over functions) are copied across. Non
// pointer commands are already copied by interface conversion.
func clone(cmd mado.Command) mado.Command {
	var v = reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr {
		return cmd
	}
	fresh := reflect.New(v.Elem().Type())
	fresh.Elem().Set(v.Elem())
	return fresh.Interface().(mado.Command)
}

// toType takes an args prototype (or pointer to one) and returns its
// reflect.Type, this type is used to later reconstruct an empty zero
// valued instance of this type when looking up with ArgsFor.
//
// Whilst callers conventionally pass value prototypes, this function
// accepts both, and unwraps them as appropriate.
//
// > Be conservative in what you do, be liberal in what you accept from others
// > – Joe Postel
func toType(t interface{}) reflect.Type {
	var v = reflect.ValueOf(t)
	if reflect.Ptr == v.Kind() || reflect.Interface == v.Kind() {
		v = v.Elem()
	}
	return v.Type()
}
