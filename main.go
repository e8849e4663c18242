package main

import "github.com/sainu/http-link-header/cmd"

func main() {
	cmd.Execute()
}
