package mado

// Request is one inbound call from the embedded page, as handed over by
// the webview toolkit's custom protocol machinery. It deliberately
// carries only what the dispatch path needs: the HTTP-ish method, the
// full request URI and the raw body bytes. The request is transient and
// owned solely by the dispatch call that produced it.
type Request struct {
	Method string
	URI    string
	Body   []byte
}
