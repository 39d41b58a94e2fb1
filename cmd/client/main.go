package main

import "ridejournal/cmd/client/cmd"

func main() {
	cmd.Execute()
}
