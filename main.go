package main

import "github.com/openstructure/mkappa/cmd"

func main() {
	cmd.Execute()
}
