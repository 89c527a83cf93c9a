package commands

import "golang.org/x/xerrors"

var (
	ErrNotFound          = xerrors.New("commands: name unknown")
	ErrAlreadyRegistered = xerrors.New("commands: name already registered")
)
