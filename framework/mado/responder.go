package mado

// Responder receives the response for a single request. Webview
// toolkits register custom protocols with an asynchronous callback
// shape, the responder is how a response eventually finds its way back
// regardless of which goroutine produced it. Respond must be called
// exactly once per request.
type Responder interface {
	Respond(Response)
}

// ResponderFunc adapts a plain function to the Responder interface.
type ResponderFunc func(Response)

func (f ResponderFunc) Respond(res Response) { f(res) }

// ProtocolFunc is the callback handed to the webview builder when
// registering the custom scheme.
type ProtocolFunc func(Request, Responder)
