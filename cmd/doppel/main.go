package main

import "github.com/dbsmedya/doppel/cmd/doppel/cmd"

func main() {
	cmd.Execute()
}
