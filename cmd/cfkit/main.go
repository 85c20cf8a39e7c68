package main

import "github.com/hsiuhsiu/cfkit-go/cmd/cfkit/cmd"

func main() {
	cmd.Execute()
}
