package invoke

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/pkg/errors"
)

// Invoker runs a deployed transformation function the way Firehose would.
type Invoker struct {
	Lambda lambdaiface.LambdaAPI
}

type Result struct {
	Response structs.Response
	Logs     string
}

func New(l lambdaiface.LambdaAPI) *Invoker {
	if l == nil {
		l = lambda.New(session.New())
	}

	return &Invoker{Lambda: l}
}

// Invoke sends e synchronously and checks that the response answers every
// record in order.
func (i *Invoker) Invoke(ctx context.Context, function string, e structs.Event) (*Result, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := i.Lambda.InvokeWithContext(ctx, &lambda.InvokeInput{
		FunctionName:   aws.String(function),
		InvocationType: aws.String(lambda.InvocationTypeRequestResponse),
		LogType:        aws.String(lambda.LogTypeTail),
		Payload:        data,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if fe := aws.StringValue(res.FunctionError); fe != "" {
		return nil, errors.Errorf("function error (%s): %s", fe, string(res.Payload))
	}

	r := &Result{}

	if err := json.Unmarshal(res.Payload, &r.Response); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	if err := verify(e, r.Response); err != nil {
		return nil, err
	}

	if lr := aws.StringValue(res.LogResult); lr != "" {
		logs, err := base64.StdEncoding.DecodeString(lr)
		if err != nil {
			return nil, errors.Wrap(err, "decode logs")
		}
		r.Logs = string(logs)
	}

	return r, nil
}

func verify(e structs.Event, res structs.Response) error {
	if len(res.Records) != len(e.Records) {
		return errors.Errorf("expected %d records in response, got %d", len(e.Records), len(res.Records))
	}

	for i := range e.Records {
		if res.Records[i].RecordID != e.Records[i].RecordID {
			return errors.Errorf("record %d: expected id %s, got %s", i, e.Records[i].RecordID, res.Records[i].RecordID)
		}
	}

	return nil
}
