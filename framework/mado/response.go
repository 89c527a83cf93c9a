package mado

// Response is the outbound half of one protocol exchange. Header uses
// the flat one-value-per-key shape custom protocol registration APIs
// expect, it is not a full net/http Header.
type Response struct {
	Status int
	Header map[string]string
	Body   []byte
}
