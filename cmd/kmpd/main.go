// kmpd serves the automaton page and its websocket API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Comcast/kmpviz/service"
	"github.com/Comcast/kmpviz/util"
)

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC)
}

func main() {

	var (
		configFile = flag.String("c", "", "optional config file (YAML)")
		httpPort   = flag.String("h", "", "HTTP service address (overrides config)")
		verbose    = flag.Bool("v", false, "verbose logging")
	)

	flag.Parse()

	cfg, err := service.LoadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	if *httpPort != "" {
		cfg.Addr = *httpPort
	}
	if *verbose {
		cfg.Verbose = true
	}
	if err = cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	util.Logging = cfg.Verbose

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err = service.New(cfg).Start(ctx); err != nil {
		log.Fatal(err)
	}

	log.Printf("main terminating")
}
