package main

import "github.com/mouse-blink/tspaths/cmd"

func main() {
	cmd.Execute()
}
