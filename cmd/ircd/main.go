package main

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/tehcyx/ircd/internal/config"
	"github.com/tehcyx/ircd/pkg/server"
	"github.com/tehcyx/ircd/pkg/version"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <port> <password>\n", os.Args[0])
		os.Exit(1)
	}
	port, password := os.Args[1], os.Args[2]

	if p, err := strconv.Atoi(port); err != nil || p < 1 || p > 65535 {
		fmt.Fprintf(os.Stderr, "invalid port: %s\n", port)
		os.Exit(1)
	}

	if config.Values.Server.Debug {
		log.SetLevel(log.DebugLevel)
	}

	log.Printf("Launching %s %s...", config.Values.Server.Name, version.GetVersion())

	srv := server.New(port, password)
	if err := srv.Run(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
