package main

import (
	"io/ioutil"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type Config struct {
	Scheme     string   `yaml:"scheme"`
	ListenAddr string   `yaml:"listen_addr"`
	Expose     []string `yaml:"expose"`

	RedisAddr        string `yaml:"redis_addr"`
	InfluxDBAddr     string `yaml:"influxdb_addr"`
	ElasticSearchURL string `yaml:"elasticsearch_url"`
	ZipkinURL        string `yaml:"zipkin_url"`
}

func DefaultConfig() Config {
	return Config{
		Scheme:     "mado",
		ListenAddr: ":8080",
		RedisAddr:  "localhost:6379",
		ZipkinURL:  "http://localhost:9411/api/v1/spans",
	}
}

// LoadConfig reads path over the defaults; an empty path is not an
// error, the defaults alone describe a working local setup. The
// InfluxDB and ElasticSearch observers stay disabled unless their
// endpoints are configured.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "can't read config file")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(err, "can't parse config file")
	}
	return cfg, nil
}
