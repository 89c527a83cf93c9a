package mado

// CommandWithArgs is an optional interface upgrade on Command
// which exposes a SetArgs method used to pass user data (parsed
// out of the request body) into the command before Apply runs.
type CommandWithArgs interface {
	Command
	SetArgs(CommandArgs) error
}
