package main

import "github.com/jsphweid/scalechords/cmd"

func main() {
	cmd.Execute()
}
