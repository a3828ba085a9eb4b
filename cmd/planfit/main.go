package main

import "github.com/planfit/planfit/cmd/planfit/cmd"

func main() {
	cmd.Execute()
}
