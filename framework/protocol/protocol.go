package protocol

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"golang.org/x/xerrors"

	"github.com/mado-framework/go-mado/commands"
	"github.com/mado-framework/go-mado/framework/ctxkey"
	"github.com/mado-framework/go-mado/framework/mado"
	"github.com/mado-framework/go-mado/framework/matcher"
	"github.com/mado-framework/go-mado/framework/resolver"
)

// Engine is the slice of the dispatch core the protocol adapter needs.
// Accepting the interface here keeps the adapter testable with a stub
// in place of the real engine.
type Engine interface {
	Apply(ctx context.Context, name string, body []byte) ([]byte, error)
}

type Option func(*Server)

// WithExposed restricts which registered commands are reachable through
// this scheme. Patterns are shell-style globs over wire names
// ("settings/*", "greet"); a command matching no pattern answers as
// unknown and its handler is never invoked. No patterns means every
// registered command is exposed.
func WithExposed(patterns ...string) Option {
	return func(s *Server) { s.exposed = patterns }
}

// WithListing mounts GET /_commands on the HTTP surface, answering with
// the sorted wire names of reg. Listing never invokes a handler.
func WithListing(reg mado.ListingRegistry) Option {
	return func(s *Server) { s.listing = reg }
}

func WithLogger(l mado.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithMiddleware wraps the HTTP surface with standard net/http
// middleware. Middleware only applies to Handler(), the raw
// ProtocolFunc surface stays bare.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(s *Server) { s.middleware = append(s.middleware, mw...) }
}

// New builds the protocol adapter for one custom scheme. The returned
// Server offers two surfaces over the same dispatch path: ProtocolFunc
// for webview toolkits with an asynchronous custom-protocol callback
// API, and Handler for toolkits or platforms that map custom schemes
// onto loopback HTTP.
func New(scheme string, e Engine, opts ...Option) *Server {
	s := &Server{
		scheme:  scheme,
		engine:  e,
		logger:  mado.NoopLogger{},
		matcher: matcher.Glob{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Server struct {
	scheme  string
	engine  Engine
	logger  mado.Logger
	matcher mado.Matcher

	exposed    []string
	listing    mado.ListingRegistry
	middleware []func(http.Handler) http.Handler
}

// ProtocolFunc returns the callback to hand to the webview builder when
// registering the custom scheme. Every request is served on its own
// goroutine: that single decision is what unifies fast and slow
// commands under the toolkit's asynchronous-only protocol API, a
// blocking command occupies its goroutine and nothing else.
func (s *Server) ProtocolFunc() mado.ProtocolFunc {
	return func(req mado.Request, responder mado.Responder) {
		go func() {
			responder.Respond(s.serveRequest(req))
		}()
	}
}

// serveRequest translates one inbound protocol request into one
// outbound response. All four failure modes (unknown command, body
// decode, the command itself, result encoding) come back as the uniform
// {"error": "..."} envelope; nothing here is fatal to the process.
func (s *Server) serveRequest(req mado.Request) mado.Response {

	spn := opentracing.StartSpan("protocol.serveRequest")
	spn.SetTag("request.method", req.Method)
	spn.SetTag("request.uri", req.URI)
	defer spn.Finish()

	switch req.Method {
	case http.MethodOptions:
		return preflightResponse()
	case http.MethodPost:
		// fallthrough to dispatch below
	default:
		return mado.Response{
			Status: http.StatusMethodNotAllowed,
			Header: map[string]string{
				"Allow":                       "POST, OPTIONS",
				"Access-Control-Allow-Origin": "*",
			},
			Body: []byte("Method Not Allowed"),
		}
	}

	name := s.commandName(req.URI)
	spn.SetTag("command.name", name)

	if name == "" || !s.isExposed(name) {
		return errorResponse(http.StatusNotFound, fmt.Sprintf("unknown command: %q", name))
	}

	ctx := ctxkey.WithScheme(context.Background(), s.scheme)
	ctx = ctxkey.WithCommandName(ctx, name)
	ctx = opentracing.ContextWithSpan(ctx, spn)

	body, err := s.engine.Apply(ctx, name, req.Body)
	if err != nil {
		s.logger.Infof("protocol: command %q failed: %s", name, err)
		return errorResponse(statusFor(err), err.Error())
	}

	return mado.Response{
		Status: http.StatusOK,
		Header: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}

// commandName extracts the wire command name from a request URI. Three
// spellings arrive in practice:
//
//	mado://greet                   (custom scheme, name in authority)
//	mado://my_commands/greet       (namespaced, authority plus path)
//	http://mado.my_commands/greet  (platforms with partial custom
//	                                scheme support smuggle the scheme
//	                                into the hostname)
//
// Transport hostnames (localhost, loopback, the bare scheme) are
// dropped so the loopback HTTP surface resolves names from the path
// alone.
func (s *Server) commandName(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	host := u.Host
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}
	path := strings.Trim(u.Path, "/")

	switch {
	case host == "", host == "localhost", host == "127.0.0.1", host == s.scheme:
		return path
	case strings.HasPrefix(host, s.scheme+"."):
		return joinName(strings.TrimPrefix(host, s.scheme+"."), path)
	default:
		return joinName(host, path)
	}
}

func joinName(authority, path string) string {
	if path == "" {
		return authority
	}
	return authority + "/" + path
}

func (s *Server) isExposed(name string) bool {
	if len(s.exposed) == 0 {
		return true
	}
	for _, pattern := range s.exposed {
		ok, err := s.matcher.DoesMatch(pattern, name)
		if err != nil {
			s.logger.Errorf("protocol: bad exposure pattern %q: %s", pattern, err)
			continue
		}
		if ok {
			return true
		}
	}
	return false
}

// statusFor maps a dispatch failure onto an error-flavored HTTP status.
// The front end is expected to read the envelope, not the status; the
// mapping exists for the benefit of devtools network panes.
func statusFor(err error) int {
	// strip the engine's pkg/errors wrapping before classifying
	err = errors.Cause(err)
	if xerrors.Is(err, commands.ErrNotFound) {
		return http.StatusNotFound
	}
	var rErr resolver.Error
	if xerrors.As(err, &rErr) && rErr.Op == "json-unmarshal" {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func preflightResponse() mado.Response {
	return mado.Response{
		Status: http.StatusNoContent,
		Header: map[string]string{
			"Access-Control-Allow-Origin":  "*",
			"Access-Control-Allow-Methods": "POST, OPTIONS",
			"Access-Control-Allow-Headers": "Content-Type",
		},
	}
}

func errorResponse(status int, msg string) mado.Response {
	body, err := json.Marshal(struct {
		Error string `json:"error"`
	}{msg})
	if err != nil {
		// a plain string field can't fail to marshal
		body = []byte(`{"error":"internal error"}`)
	}
	return mado.Response{
		Status: status,
		Header: map[string]string{
			"Content-Type":                "application/json",
			"Access-Control-Allow-Origin": "*",
		},
		Body: body,
	}
}
