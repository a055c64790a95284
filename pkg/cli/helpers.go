package cli

import (
	"io/ioutil"

	"github.com/convox/stdcli"
	"github.com/pkg/errors"
)

// input reads the file named by argument i, or stdin when it is absent or "-"
func input(c *stdcli.Context, i int) ([]byte, error) {
	if f := c.Arg(i); f != "" && f != "-" {
		data, err := ioutil.ReadFile(f)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return data, nil
	}

	data, err := ioutil.ReadAll(c.Reader())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return data, nil
}
