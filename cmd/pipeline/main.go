package main

import (
	"flag"
	"fmt"
	"os"

	"SignalPipe/internal/logging"
	"SignalPipe/internal/pipeline"
)

func main() {
	input := flag.String("input", "", "path to input CSV file")
	configPath := flag.String("config", "", "path to YAML config file")
	outputPath := flag.String("output", "", "path to output metrics JSON")
	logFile := flag.String("log-file", "", "path to log file")
	flag.Parse()

	if *input == "" || *configPath == "" || *outputPath == "" || *logFile == "" {
		fmt.Fprintln(os.Stderr, "all of -input, -config, -output and -log-file are required")
		flag.Usage()
		os.Exit(2)
	}

	f, err := logging.OpenFile(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}

	p := pipeline.New(pipeline.Options{
		Input:  *input,
		Config: *configPath,
		Output: *outputPath,
	}, logging.New(f))
	code := p.Run()

	// os.Exit skips deferred calls, so close explicitly after the final
	// log line has been written.
	f.Close()
	os.Exit(code)
}
