package main

import "github.com/notargets/advect2d/cmd"

func main() {
	cmd.Execute()
}
