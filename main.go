package main

import "github.com/linktower/linktower/cmd"

func main() {
	cmd.Execute()
}
