package main

import "pocketapp/cmd/client/cmd"

func main() {
	cmd.Execute()
}
