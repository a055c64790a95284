package transform

import (
	"context"
	"encoding/base64"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/convox/firehose-transform/pkg/calendar"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/convox/logger"
	"github.com/pkg/errors"
)

const DefaultField = "calendarTime"

type Options struct {
	Field  string
	Logger *logger.Logger
}

// Transformer rewrites one calendar time field of every record in a
// Firehose batch. It holds no state between batches.
type Transformer struct {
	field  string
	logger *logger.Logger
}

type Summary struct {
	Records   int
	Delivered int
	Failed    int
}

func New(opts Options) *Transformer {
	t := &Transformer{
		field:  opts.Field,
		logger: opts.Logger,
	}

	if t.field == "" {
		t.field = DefaultField
	}

	if t.logger == nil {
		t.logger = logger.New("ns=transform")
	}

	return t
}

func (t *Transformer) Field() string {
	return t.field
}

// Handle is the lambda entry point. Record failures are reported per record
// so the batch itself never fails.
func (t *Transformer) Handle(ctx context.Context, e structs.Event) (structs.Response, error) {
	res, _ := t.Batch(ctx, e)
	return res, nil
}

// Batch transforms every record in order and logs a single summary line.
func (t *Transformer) Batch(ctx context.Context, e structs.Event) (structs.Response, Summary) {
	log := t.logger.At("batch").Start()

	if e.InvocationID != "" {
		log = log.Namespace("invocation=%s", e.InvocationID)
	}

	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = log.Namespace("request=%s", lc.AwsRequestID)
	}

	res := structs.Response{Records: make([]structs.ResponseRecord, 0, len(e.Records))}
	sum := Summary{Records: len(e.Records)}

	for _, r := range e.Records {
		rr := structs.ResponseRecord{RecordID: r.RecordID}

		if data, err := t.Record(r); err != nil {
			rr.Result = structs.ResultProcessingFailed
			rr.Data = r.Data
			sum.Failed++
		} else {
			rr.Result = structs.ResultOk
			rr.Data = data
			sum.Delivered++
		}

		res.Records = append(res.Records, rr)
	}

	log.Successf("records=%d delivered=%d failed=%d", sum.Records, sum.Delivered, sum.Failed)

	return res, sum
}

// Record returns the transformed base64 payload of r.
func (t *Transformer) Record(r structs.Record) (string, error) {
	doc, err := base64.StdEncoding.DecodeString(r.Data)
	if err != nil {
		return "", errors.Wrap(err, "decode base64")
	}

	v, err := StringField(doc, t.field)
	if err != nil {
		return "", err
	}

	iso, err := calendar.Convert(v)
	if err != nil {
		return "", err
	}

	out, err := ReplaceString(doc, t.field, iso)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(out), nil
}
