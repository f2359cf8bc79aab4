//go:build !js

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func main() {
	configPath := flag.String("config", "", "YAML configuration file")
	dim := flag.Int("mode", 2, "Initial dimension of the matrix and vector (2 or 3)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [command args...]\n\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "Without a command, commands are read from stdin, one per line.")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetFlags(0)

	cfg := defaultConfig()
	if *configPath != "" {
		b, err := os.ReadFile(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		if cfg, err = parseConfig(b); err != nil {
			log.Fatalf("%s: %v", *configPath, err)
		}
	}
	md, err := parseMode(float64(*dim))
	if err != nil {
		log.Fatalf("-mode %d: %v", *dim, err)
	}

	c := &console{
		state:     newTransformState(md),
		precision: cfg.Precision,
	}

	if flag.NArg() > 0 {
		res, err := c.Run(strings.Join(flag.Args(), " "))
		if err != nil {
			log.Fatal(err)
		}
		if res != "" {
			fmt.Println(res)
		}
		return
	}

	if err := runConsole(c, os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
