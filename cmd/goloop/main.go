package main

import "github.com/dbsmedya/goloop/cmd/goloop/cmd"

func main() {
	cmd.Execute()
}
