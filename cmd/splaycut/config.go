package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// flagConfig presents command line settings as a key/value configuration
// for schuko.
type flagConfig map[string]any

var _ schuko.Configuration = flagConfig{}

func (c flagConfig) InitDefaults() {
	if _, ok := c["tracing.adapter"]; !ok {
		c["tracing.adapter"] = "go"
	}
	if _, ok := c["tracelevel.root"]; !ok {
		c["tracelevel.root"] = "Error"
	}
}

func (c flagConfig) IsSet(key string) bool {
	_, ok := c[key]
	return ok
}

func (c flagConfig) GetString(key string) string {
	if v, ok := c[key]; ok {
		return fmt.Sprintf("%v", v)
	}
	return ""
}

func (c flagConfig) GetInt(key string) int {
	switch v := c[key].(type) {
	case int:
		return v
	case string:
		n, _ := strconv.Atoi(v)
		return n
	}
	return 0
}

func (c flagConfig) GetBool(key string) bool {
	switch v := c[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(v)
		return b
	}
	return false
}

func (c flagConfig) IsInteractive() bool {
	return false
}

// setupTracing configures application-wide tracing. Tracers are written by
// Go's standard logger, with level traceLevel for the rope packages.
func setupTracing(traceLevel string) error {
	switch strings.ToLower(traceLevel) {
	case "error", "info", "debug":
	default:
		return fmt.Errorf("unknown trace level %q", traceLevel)
	}
	conf := flagConfig{
		"tracing.adapter":      "go",
		"tracelevel.root":      "Error",
		"tracelevel.splayrope": traceLevel,
	}
	conf.InitDefaults()
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	tracing.Select("splayrope").Debugf("tracing configured with level %s", traceLevel)
	return nil
}
