// Command api runs the InternshipFinder HTTP server.
package main

import (
	"log"

	"github.com/shalakurjjamanshakib/InternshipFinder/internal/server"
)

// @title InternshipFinder API
// @version 1.0
// @description Internship listing marketplace where employers post internships and students apply.
// @BasePath /api/v1
func main() {
	srv, err := server.NewServer()
	if err != nil {
		log.Fatalf("cannot start server: %s", err)
	}

	log.Printf("listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("cannot start server: %s", err)
	}
}
