package main

import "github.com/mconway/firefly-iii/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
