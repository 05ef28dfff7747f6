package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/menta2k/sprite-cutter/internal/cli"
)

func main() {
	err := cli.Execute()
	glog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
