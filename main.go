package main

import "github.com/notargets/fvgrid/cmd"

func main() {
	cmd.Execute()
}
