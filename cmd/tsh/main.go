package main

var BUILD_VERSION = "dev"

func main() {
	Execute()
}
