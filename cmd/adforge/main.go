package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/adforgehq/adforge/config"
	"github.com/adforgehq/adforge/internal/adminapi"
	"github.com/adforgehq/adforge/internal/app"
)

var (
	h        = flag.Bool("h", false, "help usage")
	showVer  = flag.Bool("v", false, "show version")
	conffile = flag.String("c", "", "config yaml file")
)

var version = "dev"

func main() {
	flag.Parse()
	if *h {
		flag.Usage()
		os.Exit(0)
	}
	if *showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	cfg := config.LoadConfig(*conffile)

	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %s\n", err.Error())
		os.Exit(1)
	}
	defer application.Release()

	server := adminapi.NewServer(application)
	if err := server.Start(); err != nil {
		zap.S().Errorf("admin api stopped: %s", err.Error())
	}
}
