package main

import "github.com/xqrs/gridview/cmd"

func main() {
	cmd.Execute()
}
