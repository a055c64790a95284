package main

import (
	"io"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/convox/firehose-transform/pkg/helpers"
	"github.com/convox/firehose-transform/pkg/transform"
	"github.com/convox/logger"
)

func main() {
	lambda.Start(handler(os.Stdout).Handle)
}

func handler(w io.Writer) *transform.Transformer {
	return transform.New(transform.Options{
		Field:  helpers.Env("FIELD", transform.DefaultField),
		Logger: logger.NewWriter("ns=transform", w),
	})
}
