package cli_test

import (
	"encoding/base64"
	"encoding/json"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/convox/firehose-transform/pkg/cli"
	"github.com/convox/firehose-transform/pkg/structs"
	"github.com/stretchr/testify/require"
)

func decodeResponse(t *testing.T, s string) structs.Response {
	var res structs.Response
	require.NoError(t, json.Unmarshal([]byte(s), &res))
	return res
}

func TestRun(t *testing.T) {
	testEngine(t, func(e *cli.Engine, m *mockLambda) {
		res, err := testExecute(e, "run", strings.NewReader(fxEvent))
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)

		r := decodeResponse(t, res.Stdout)
		require.Len(t, r.Records, 2)

		require.Equal(t, "r1", r.Records[0].RecordID)
		require.Equal(t, structs.ResultOk, r.Records[0].Result)
		data, err := base64.StdEncoding.DecodeString(r.Records[0].Data)
		require.NoError(t, err)
		require.Equal(t, `{"calendarTime":"2014-09-30T17:37:30","host":"h1"}`, string(data))

		require.Equal(t, "r2", r.Records[1].RecordID)
		require.Equal(t, structs.ResultProcessingFailed, r.Records[1].Result)
		require.Equal(t, b64(`{"calendarTime":"yesterday","host":"h2"}`), r.Records[1].Data)

		require.Contains(t, res.Stderr, "ns=transform at=batch invocation=inv1 state=success records=2 delivered=1 failed=1")
	})
}

func TestRunFile(t *testing.T) {
	testEngine(t, func(e *cli.Engine, m *mockLambda) {
		f, err := ioutil.TempFile("", "event")
		require.NoError(t, err)
		defer os.Remove(f.Name())

		_, err = f.WriteString(fxEvent)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		res, err := testExecute(e, "run "+f.Name(), nil)
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)
		require.Len(t, decodeResponse(t, res.Stdout).Records, 2)
	})
}

func TestRunField(t *testing.T) {
	testEngine(t, func(e *cli.Engine, m *mockLambda) {
		event := `{"records":[{"recordId":"a","data":"` + b64(`{"ts":"Fri Feb 14 08:30:00 2020 UTC"}`) + `"}]}`

		res, err := testExecute(e, "run --field ts", strings.NewReader(event))
		require.NoError(t, err)
		require.Equal(t, 0, res.Code)

		r := decodeResponse(t, res.Stdout)
		require.Equal(t, structs.ResultOk, r.Records[0].Result)
		require.Equal(t, b64(`{"ts":"2020-02-14T08:30:00"}`), r.Records[0].Data)
	})
}

func TestRunInvalidEvent(t *testing.T) {
	testEngine(t, func(e *cli.Engine, m *mockLambda) {
		res, err := testExecute(e, "run", strings.NewReader("nope"))
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		require.True(t, strings.HasPrefix(res.Stderr, "ERROR: decode event: "), res.Stderr)
		res.RequireStdout(t, []string{""})
	})
}

func TestRunMissingFile(t *testing.T) {
	testEngine(t, func(e *cli.Engine, m *mockLambda) {
		res, err := testExecute(e, "run /nonexistent/event.json", nil)
		require.NoError(t, err)
		require.Equal(t, 1, res.Code)
		require.Contains(t, res.Stderr, "no such file or directory")
	})
}
