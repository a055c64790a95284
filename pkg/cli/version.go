package cli

import (
	"github.com/convox/firehose-transform/pkg/invoke"
	"github.com/convox/stdcli"
)

func init() {
	registerWithoutProvider("version", "display version information", Version, stdcli.CommandOptions{
		Validate: stdcli.Args(0),
	})
}

func Version(_ *invoke.Invoker, c *stdcli.Context) error {
	return c.Writef("%s\n", c.Version())
}
