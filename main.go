package main

import (
	"flag"
	"log"

	"github.com/orgcharts/orgcharts-backend/cmd"
)

func main() {
	shouldRunMigrations := flag.Bool("migrations", false, "Run migrations")
	shouldRunServer := flag.Bool("server", false, "Run server")
	seedFile := flag.String("seed", "", "Upsert org units, data elements, periods, data sets and data values from a YAML file")
	flag.Parse()

	if *shouldRunMigrations {
		if err := cmd.RunMigrations(); err != nil {
			log.Fatal(err)
		}
	}

	if *seedFile != "" {
		if err := cmd.RunSeed(*seedFile); err != nil {
			log.Fatal(err)
		}
	}

	if *shouldRunServer {
		if err := cmd.RunServer(); err != nil {
			log.Fatal(err)
		}
	}
}
