package main

import "github.com/jsphweid/chordnova/cmd"

func main() {
	cmd.Execute()
}
