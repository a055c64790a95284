package cli

import (
	"context"
	"encoding/json"

	"github.com/convox/firehose-transform/pkg/helpers"
	"github.com/convox/firehose-transform/pkg/invoke"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/convox/stdcli"
	"github.com/pkg/errors"
)

func init() {
	register("invoke", "send a firehose event to a deployed function", Invoke, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagLogs},
		Usage:    "<function> [file]",
		Validate: stdcli.ArgsBetween(1, 2),
	})
}

func Invoke(i *invoke.Invoker, c *stdcli.Context) error {
	data, err := input(c, 1)
	if err != nil {
		return err
	}

	var e structs.Event

	if err := json.Unmarshal(data, &e); err != nil {
		return errors.Wrap(err, "decode event")
	}

	c.Startf("Invoking <id>%s</id> with %s", c.Arg(0), helpers.Count(len(e.Records), "record"))

	r, err := i.Invoke(context.Background(), c.Arg(0), e)
	if err != nil {
		return err
	}

	c.OK()

	delivered, failed := 0, 0

	t := c.Table("RECORD", "RESULT")

	for _, rr := range r.Response.Records {
		switch rr.Result {
		case structs.ResultOk:
			delivered++
		case structs.ResultProcessingFailed:
			failed++
		}

		t.AddRow(rr.RecordID, rr.Result)
	}

	if err := t.Print(); err != nil {
		return err
	}

	if err := c.Writef("%s delivered, %s failed\n", helpers.Count(delivered, "record"), helpers.Count(failed, "record")); err != nil {
		return err
	}

	if c.Bool("logs") && r.Logs != "" {
		return c.Writef("%s", r.Logs)
	}

	return nil
}
