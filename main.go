package main

import "flag"

func main() {
	port := flag.Int("port", 5000, "server port")
	dataFile := flag.String("data", "backend/reflections.json", "reflections storage file")
	flag.Parse()

	startServer(*dataFile, *port)
}
