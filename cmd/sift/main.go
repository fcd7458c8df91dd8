package main

import "github.com/sant0-9/sift/cmd/sift/cmd"

func main() {
	cmd.Execute()
}
