package main

import "github.com/NoNameLmao/yt2hoi4/cmd/yt2hoi4/cmd"

func main() {
	cmd.Execute()
}
