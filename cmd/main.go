package main

import (
	cmd "github.com/danivela/storyfeed/cmd/storyfeed"
)

func main() {
	cmd.Execute()
}
