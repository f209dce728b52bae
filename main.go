package main

import "github.com/jsphweid/bopset/cmd"

func main() {
	cmd.Execute()
}
