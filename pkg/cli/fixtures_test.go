package cli_test

import (
	"encoding/base64"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/lambda"
	"github.com/aws/aws-sdk-go/service/lambda/lambdaiface"
	"github.com/stretchr/testify/mock"
)

type mockLambda struct {
	lambdaiface.LambdaAPI
	mock.Mock
}

func (m *mockLambda) InvokeWithContext(ctx aws.Context, in *lambda.InvokeInput, opts ...request.Option) (*lambda.InvokeOutput, error) {
	args := m.Called(aws.StringValue(in.FunctionName), string(in.Payload))

	out, _ := args.Get(0).(*lambda.InvokeOutput)

	return out, args.Error(1)
}

func b64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

var fxEvent = `{
  "invocationId": "inv1",
  "deliveryStreamArn": "arn:aws:firehose:us-east-1:123456789012:deliverystream/osquery",
  "region": "us-east-1",
  "records": [
    {"recordId": "r1", "approximateArrivalTimestamp": 1412123850000, "data": "` + b64(`{"calendarTime":"Tue Sep 30 17:37:30 2014 UTC","host":"h1"}`) + `"},
    {"recordId": "r2", "approximateArrivalTimestamp": 1412123850000, "data": "` + b64(`{"calendarTime":"yesterday","host":"h2"}`) + `"}
  ]
}`
