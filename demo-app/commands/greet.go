package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/mado-framework/go-mado/commands"
	"github.com/mado-framework/go-mado/framework/mado"
)

type GreetArgs struct {
	Name string `json:"name"`
}

type GreetReply struct {
	Message string `json:"message"`
}

// Greet is the hand-rolled flavor of command declaration: a struct
// implementing CommandWithArgs directly, registered from init. Compare
// Fetch which leans on commands.Func to adapt a plain function.
type Greet struct {
	args GreetArgs
}

func (cmd *Greet) SetArgs(args mado.CommandArgs) error {
	if a, ok := args.(*GreetArgs); ok {
		cmd.args = *a
		return nil
	}
	return errors.New("can't cast")
}

func (cmd *Greet) Apply(ctx context.Context) (interface{}, error) {
	return GreetReply{Message: fmt.Sprintf("Hello, %s!", cmd.args.Name)}, nil
}

func init() {
	commands.MustRegisterWithArgs("greet", &Greet{}, GreetArgs{})
}
