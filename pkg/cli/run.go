package cli

import (
	"context"
	"encoding/json"

	"github.com/convox/firehose-transform/pkg/invoke"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/convox/firehose-transform/pkg/transform"
	"github.com/convox/logger"
	"github.com/convox/stdcli"
	"github.com/pkg/errors"
)

func init() {
	registerWithoutProvider("run", "transform a firehose event locally", Run, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagField},
		Usage:    "[file]",
		Validate: stdcli.ArgsMax(1),
	})
}

func Run(_ *invoke.Invoker, c *stdcli.Context) error {
	data, err := input(c, 0)
	if err != nil {
		return err
	}

	var e structs.Event

	if err := json.Unmarshal(data, &e); err != nil {
		return errors.Wrap(err, "decode event")
	}

	t := transform.New(transform.Options{
		Field:  c.String("field"),
		Logger: logger.NewWriter("ns=transform", c.Writer().Stderr),
	})

	res, err := t.Handle(context.Background(), e)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Writef("%s\n", out)
}
