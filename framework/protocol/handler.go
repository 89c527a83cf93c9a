package protocol

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/golang-collections/collections/stack"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/mado-framework/go-mado/framework/mado"
)

// Handler returns the loopback HTTP surface over the same dispatch
// path as ProtocolFunc, for toolkits or platforms whose custom scheme
// support is partial and which fall back to http://{scheme}.{command}
// URLs against a local listener.
//
// CORS on this surface is delegated to gorilla/handlers so preflight
// negotiation behaves exactly as a browser-grade implementation; the
// inner dispatch still answers bare OPTIONS itself for hosts that skip
// the middleware. Registered middleware wraps outermost-last: the
// chain is assembled by pushing onto a stack and popping, so the first
// WithMiddleware entry sees the request first.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	if s.listing != nil {
		r.Handle("/_commands", listingServer{s.listing}).Methods("GET")
	}
	r.PathPrefix("/").HandlerFunc(s.serveHTTP)

	var h http.Handler = handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(r)

	chain := stack.New()
	for _, mw := range s.middleware {
		chain.Push(mw)
	}
	for chain.Len() > 0 {
		h = chain.Pop().(func(http.Handler) http.Handler)(h)
	}
	return h
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res := s.serveRequest(mado.Request{
		Method: r.Method,
		URI:    "http://" + r.Host + r.URL.RequestURI(),
		Body:   body,
	})

	for k, v := range res.Header {
		w.Header().Set(k, v)
	}
	w.WriteHeader(res.Status)
	w.Write(res.Body)
}

// listingServer enumerates the registered wire names, it exists for
// front-end tooling and debugging and never invokes a handler.
type listingServer struct {
	reg mado.ListingRegistry
}

func (ls listingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(ls.reg.List()); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}
