package main

import (
	"os"

	"github.com/convox/firehose-transform/pkg/cli"
)

var (
	version = "dev"
)

func main() {
	c := cli.New("firehose-transform", version)

	os.Exit(c.Execute(os.Args[1:]))
}
