package main

import "home-media/cmd"

func main() {
	cmd.Execute()
}
