package main

import "github.com/mconway/firefly-iii/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
