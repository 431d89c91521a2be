package main

import "github.com/shopsight/shopsight-mcp/cmd"

func main() {
	cmd.Execute()
}
