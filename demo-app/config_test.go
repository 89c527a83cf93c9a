package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	test "github.com/mado-framework/go-mado/framework/test_helper"
)

func Test_LoadConfig_EmptyPathYieldsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	test.H(t).IsNil(err)
	test.H(t).InterfaceEql(cfg, DefaultConfig())
}

func Test_LoadConfig_FileOverridesDefaults(t *testing.T) {
	dir, err := ioutil.TempDir("", "demo-app-config")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")
	doc := []byte("scheme: proto\nexpose:\n  - greet\n  - settings/*\n")
	if err := ioutil.WriteFile(path, doc, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	test.H(t).IsNil(err)
	test.H(t).StringEql(cfg.Scheme, "proto")
	test.H(t).InterfaceEql(cfg.Expose, []string{"greet", "settings/*"})
	// untouched keys keep their defaults
	test.H(t).StringEql(cfg.RedisAddr, "localhost:6379")
}

func Test_LoadConfig_MissingFileIsAnError(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yml")
	test.H(t).NotNil(err)
}
