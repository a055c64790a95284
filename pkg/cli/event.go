package cli

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/convox/firehose-transform/pkg/helpers"
	"github.com/convox/firehose-transform/pkg/invoke"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/convox/stdcli"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

func init() {
	registerWithoutProvider("event", "build a firehose event from json lines", Event, stdcli.CommandOptions{
		Flags:    []stdcli.Flag{flagRegion, flagStream},
		Usage:    "[file]",
		Validate: stdcli.ArgsMax(1),
	})
}

func Event(_ *invoke.Invoker, c *stdcli.Context) error {
	data, err := input(c, 0)
	if err != nil {
		return err
	}

	e, err := buildEvent(data, helpers.CoalesceString(c.String("region"), "us-east-1"), c.String("stream"))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Writef("%s\n", out)
}

func buildEvent(data []byte, region, stream string) (*structs.Event, error) {
	e := &structs.Event{
		InvocationID:      uuid.NewV4().String(),
		DeliveryStreamArn: stream,
		Region:            region,
		Records:           []structs.Record{},
	}

	now := &events.MilliSecondsEpochTime{Time: time.Now().UTC()}

	s := bufio.NewScanner(bytes.NewReader(data))
	s.Buffer(make([]byte, 64*1024), 6*1024*1024)

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}

		e.Records = append(e.Records, structs.Record{
			RecordID:                    uuid.NewV4().String(),
			ApproximateArrivalTimestamp: now,
			Data:                        base64.StdEncoding.EncodeToString([]byte(line)),
		})
	}

	if err := s.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return e, nil
}
