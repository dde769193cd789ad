package main

import "github.com/lenix123/dd-manager/cmd"

func main() {
	cmd.Execute()
}
