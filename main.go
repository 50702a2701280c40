package main

import "github.com/jsphweid/mcpreduce/cmd"

func main() {
	cmd.Execute()
}
