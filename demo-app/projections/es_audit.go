package projections

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/olivere/elastic"

	"github.com/mado-framework/go-mado/framework/mado"
)

var mapping = `
{
	"settings": {
		"number_of_shards": 1,
		"number_of_replicas": 0
	},
	"mappings": {
		"invocation": {
			"properties": {
				"began_at": {
					"type": "date"
				},
				"name": {
					"type": "keyword"
				},
				"duration_ms": {
					"type": "double"
				},
				"error": {
					"type": "text",
					"store": true
				}
			}
		}
	}
}`

type invocationDoc struct {
	Name       string    `json:"name"`
	BeganAt    time.Time `json:"began_at"`
	DurationMS float64   `json:"duration_ms"`
	Error      string    `json:"error,omitempty"`
}

// NewElasticSearchAudit indexes one document per command invocation,
// giving the host application a searchable audit trail of what the
// front end asked for and how it went. Same enqueue-and-drain shape as
// the InfluxDB observer.
func NewElasticSearchAudit(ctx context.Context, esURL string) mado.Observer {

	var (
		indexName = "invocations"
		records   = make(chan mado.Invocation, 256)
	)

	client, err := elastic.NewClient(
		elastic.SetSniff(false),
		elastic.SetURL(esURL),
		elastic.SetErrorLog(log.New(os.Stdout, "es-audit: ", 0)),
	)
	if err != nil {
		fmt.Println("es-audit: err dialing ES:", err)
		return chanObserver(records)
	}

	exists, err := client.IndexExists(indexName).Do(ctx)
	if err != nil {
		fmt.Println("es-audit: err checking for index:", err)
	}
	if !exists {
		if _, err := client.CreateIndex(indexName).BodyString(mapping).Do(ctx); err != nil {
			fmt.Println("es-audit: err creating index:", err)
		}
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case inv := <-records:
				doc := invocationDoc{
					Name:       inv.Name,
					BeganAt:    inv.Began,
					DurationMS: inv.Duration.Seconds() * 1000,
				}
				if inv.Err != nil {
					doc.Error = inv.Err.Error()
				}
				_, err := client.Index().
					Index(indexName).
					Type("invocation").
					BodyJson(doc).
					Do(ctx)
				if err != nil {
					fmt.Println("es-audit: err indexing invocation:", err)
				}
			}
		}
	}()

	return chanObserver(records)
}
