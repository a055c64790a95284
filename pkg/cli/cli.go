package cli

import (
	"github.com/convox/firehose-transform/pkg/invoke"
	"github.com/convox/stdcli"
)

type HandlerFunc func(*invoke.Invoker, *stdcli.Context) error

var (
	flagField  = stdcli.StringFlag("field", "f", "json field holding the calendar time")
	flagLogs   = stdcli.BoolFlag("logs", "l", "print the function log tail")
	flagRegion = stdcli.StringFlag("region", "r", "region recorded in the event")
	flagStream = stdcli.StringFlag("stream", "s", "delivery stream arn recorded in the event")
)

func New(name, version string) *Engine {
	e := &Engine{
		Engine: stdcli.New(name, version),
	}

	e.RegisterCommands()

	return e
}
