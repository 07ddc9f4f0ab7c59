package main

import "weeklog/cmd"

func main() {
	cmd.Execute()
}
