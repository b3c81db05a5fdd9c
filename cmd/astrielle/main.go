package main

import "astrielle/cmd/astrielle/root"

func main() {
	root.Execute()
}
