package main

import (
	"github.com/accessdomain/fwengine/cmd/fwctl/cmd"
)

func main() {
	cmd.Execute()
}
