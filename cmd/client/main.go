package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dailyjournal-app/daily-journal/internal/client/api"
	"github.com/dailyjournal-app/daily-journal/internal/client/app"
	"github.com/dailyjournal-app/daily-journal/internal/client/iocli"
	"github.com/dailyjournal-app/daily-journal/internal/client/session"
)

func main() {
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "daily-journal.db", "Path to the local session store")
	flag.Parse()

	sessions, err := session.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer sessions.Close()

	journalApp := app.New(api.NewClient(*serverURL), sessions, iocli.NewStdio())
	if err := journalApp.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
