package main

import "envserve/cmd"

func main() {
	cmd.Execute()
}
