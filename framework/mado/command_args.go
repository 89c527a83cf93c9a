package mado

// CommandArgs is a type alias for interface{} to make the function
// signatures expressive. Concrete args are plain structs with JSON
// tags, registered alongside their command as a zero-valued prototype.
type CommandArgs interface{}
