package main

import "contenthub/cmd/client/cmd"

func main() {
	cmd.Execute()
}
