package main

import (
	"github.com/ross-rotordynamics/ross-bott/cmd"
)

func main() {
	cmd.Execute()
}
