package commands

import (
	"reflect"

	"golang.org/x/xerrors"

	"github.com/mado-framework/go-mado/framework/identifier"
)

// RegisterReceiver turns every exported method of rcv into a registered
// command, namespaced "prefix/method_name". An empty prefix derives one
// from the receiver's type name, so the methods of a *Settings value
// register as "settings/get", "settings/put" and so on.
//
// This is the declarative counterpart to registering each function by
// hand: the receiver struct colocates a family of commands with
// whatever shared state (clients, handles) they close over. Every
// exported method must satisfy the shapes accepted by Func; a method
// that doesn't fails the whole registration, a half-registered receiver
// being worse than a loud startup error.
func RegisterReceiver(prefix string, rcv interface{}) error {
	v := reflect.ValueOf(rcv)
	if !v.IsValid() {
		return xerrors.New("commands: nil receiver")
	}
	t := v.Type()
	if t.NumMethod() == 0 {
		return xerrors.Errorf("commands: %s has no exported methods", t)
	}

	if prefix == "" {
		named := t
		if named.Kind() == reflect.Ptr {
			named = named.Elem()
		}
		prefix = named.Name()
	}

	for i := 0; i < t.NumMethod(); i++ {
		m := t.Method(i)
		cmd, args, err := Func(v.Method(i).Interface())
		if err != nil {
			return xerrors.Errorf("commands: method %s.%s: %w", t, m.Name, err)
		}
		name := identifier.Join(prefix, m.Name)
		if args != nil {
			err = RegisterWithArgs(name, cmd, args)
		} else {
			err = Register(name, cmd)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func MustRegisterReceiver(prefix string, rcv interface{}) {
	if err := RegisterReceiver(prefix, rcv); err != nil {
		panic(err)
	}
}
