package main

import (
	"log"
	"os"

	"github.com/Radiyassin/login-campus-connect/core"
	authsvc "github.com/Radiyassin/login-campus-connect/services/auth"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// start CLI
	cli := commandLine{
		conf:     conf,
		provider: authsvc.NewEmailProvider(),
		out:      os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}
