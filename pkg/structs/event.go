package structs

import (
	"github.com/aws/aws-lambda-go/events"
)

const (
	ResultOk               = events.KinesisFirehoseTransformedStateOk
	ResultDropped          = events.KinesisFirehoseTransformedStateDropped
	ResultProcessingFailed = events.KinesisFirehoseTransformedStateProcessingFailed
)

// Event is the batch Firehose hands to a data transformation function.
type Event struct {
	InvocationID           string   `json:"invocationId"`
	DeliveryStreamArn      string   `json:"deliveryStreamArn"`
	SourceKinesisStreamArn string   `json:"sourceKinesisStreamArn,omitempty"`
	Region                 string   `json:"region"`
	Records                []Record `json:"records"`
}

// Record carries its payload as base64 text so that a malformed payload
// fails that record alone instead of the whole envelope.
type Record struct {
	RecordID                    string                                `json:"recordId"`
	ApproximateArrivalTimestamp *events.MilliSecondsEpochTime         `json:"approximateArrivalTimestamp,omitempty"`
	Data                        string                                `json:"data"`
	KinesisRecordMetadata       *events.KinesisFirehoseRecordMetadata `json:"kinesisRecordMetadata,omitempty"`
}

type Response struct {
	Records []ResponseRecord `json:"records"`
}

type ResponseRecord struct {
	RecordID string `json:"recordId"`
	Result   string `json:"result"`
	Data     string `json:"data"`
}
