package projections

import (
	"context"
	"fmt"

	"github.com/influxdata/influxdb/client/v2"

	"github.com/mado-framework/go-mado/framework/mado"
)

// NewInfluxDBStats feeds per-command invocation counts and durations
// into InfluxDB. CommandInvoked only enqueues; a background goroutine
// owns the HTTP client so a slow or absent InfluxDB never stalls a
// dispatch. When the buffer fills, records are dropped on the floor.
func NewInfluxDBStats(ctx context.Context, addr string) mado.Observer {
	var (
		influxDBName        = "madov1"
		records             = make(chan mado.Invocation, 256)
		influxHTTPClient, _ = client.NewHTTPClient(client.HTTPConfig{
			Addr: addr,
		})
	)
	res, err := influxHTTPClient.Query(client.NewQuery("CREATE DATABASE "+influxDBName, "", ""))
	if err != nil {
		fmt.Println("err creating database", err)
	}
	if res != nil && res.Error() != nil {
		fmt.Println("err creating database", res.Error())
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case inv := <-records:
				bp, _ := client.NewBatchPoints(client.BatchPointsConfig{
					Database:  influxDBName,
					Precision: "ms",
				})
				var status = "ok"
				if inv.Err != nil {
					status = "error"
				}
				var tags = map[string]string{
					"name":   inv.Name,
					"status": status,
				}
				var fields = map[string]interface{}{
					"count":       1,
					"duration_ms": inv.Duration.Seconds() * 1000,
				}
				pt, err := client.NewPoint("commands", tags, fields, inv.Began)
				if err != nil {
					fmt.Println("Error: ", err.Error())
					continue
				}
				bp.AddPoint(pt)
				err = influxHTTPClient.Write(bp)
				if err != nil {
					fmt.Println("err writing to influxdb", err)
				}
			}
		}
	}()

	return chanObserver(records)
}

// chanObserver drops rather than blocks when its channel is full.
type chanObserver chan mado.Invocation

func (c chanObserver) CommandInvoked(inv mado.Invocation) {
	select {
	case c <- inv:
	default:
	}
}
