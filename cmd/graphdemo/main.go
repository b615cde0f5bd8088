package main

import "github.com/yourusername/ideagraph/cmd/graphdemo/cmd"

func main() {
	cmd.Execute()
}
