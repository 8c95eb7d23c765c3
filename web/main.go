package main

import (
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/df07/go-whitted-raytracer/web/server"
)

func main() {
	port := pflag.IntP("port", "p", 8080, "Port to serve on")
	scenesDir := pflag.String("scenes-dir", "scenes", "Directory searched for json:<name> scenes")
	pflag.Parse()

	webServer := server.NewServer(*port, *scenesDir)

	log.Printf("Whitted Raytracer Web Server")
	log.Printf("Try http://localhost:%d/api/render?scene=default", *port)

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
