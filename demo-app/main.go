package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-redis/redis"
	"github.com/gorilla/handlers"
	"github.com/namsral/flag"
	opentracing "github.com/opentracing/opentracing-go"
	zipkin "github.com/openzipkin/zipkin-go-opentracing"

	"github.com/mado-framework/go-mado/commands"
	"github.com/mado-framework/go-mado/framework/engine"
	"github.com/mado-framework/go-mado/framework/mado"
	"github.com/mado-framework/go-mado/framework/protocol"
	"github.com/mado-framework/go-mado/framework/resolver"

	"github.com/mado-framework/go-mado/demo-app/projections"

	appcommands "github.com/mado-framework/go-mado/demo-app/commands"
)

// demo-app serves the command protocol over loopback HTTP, standing in
// for the webview toolkit that would normally own the custom scheme. A
// real embedding passes protocol.New(...).ProtocolFunc() to the
// toolkit's custom-protocol registration instead of listening on a
// port; everything else stays identical.
func main() {

	var configPath string

	flag.StringVar(&configPath, "config", "", "path to a yaml config file")
	flag.Parse()

	cfg, err := LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
	}

	var ctx = context.Background()

	collector, err := zipkin.NewHTTPCollector(cfg.ZipkinURL)
	if err != nil {
		log.Fatal(err)
	}
	defer collector.Close()

	tracer, err := zipkin.NewTracer(
		zipkin.NewRecorder(collector, true, cfg.ListenAddr, "go-mado-demo-app"),
	)
	if err != nil {
		log.Fatal(err)
	}
	opentracing.SetGlobalTracer(tracer)

	// greet and fetch register themselves from init; settings needs
	// the redis client so it registers here, before serving starts.
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	commands.MustRegisterReceiver("settings", appcommands.NewSettings(redisClient))

	e := engine.New(resolver.New(commands.DefaultRegistry).Resolve)
	if cfg.InfluxDBAddr != "" {
		e.Observe(projections.NewInfluxDBStats(ctx, cfg.InfluxDBAddr))
	}
	if cfg.ElasticSearchURL != "" {
		e.Observe(projections.NewElasticSearchAudit(ctx, cfg.ElasticSearchURL))
	}

	srv := protocol.New(cfg.Scheme, e,
		protocol.WithExposed(cfg.Expose...),
		protocol.WithListing(commands.DefaultRegistry.(mado.ListingRegistry)),
	)

	log.Println("registered commands:", commands.List())
	log.Println("serving", cfg.Scheme, "protocol on", cfg.ListenAddr)

	s := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        handlers.CombinedLoggingHandler(os.Stdout, srv.Handler()),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Fatal(s.ListenAndServe())
}
