// Command seed inserts proposal rows into the configured database. The HTTP
// service itself is read-only; this stands in for the external write path
// during development.
package main

import (
	"context"
	"flag"
	"strings"

	"github.com/proposalboard/proposalboard/internal/config"
	"github.com/proposalboard/proposalboard/internal/db"
	"github.com/proposalboard/proposalboard/internal/logging"
)

func main() {
	logger := logging.New("seed")

	titles := flag.String("titles", "", "comma-separated proposal titles to insert")
	flag.Parse()

	if *titles == "" {
		logger.Fatal("no titles given, use -titles \"Alpha,Beta\"")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	store, err := db.NewStore(db.DBConfig{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		DSN:    cfg.DBDSN,
	})
	if err != nil {
		logger.Fatalf("init database: %v", err)
	}
	defer func() { _ = store.Close() }()

	ctx := context.Background()
	for _, title := range strings.Split(*titles, ",") {
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		id, err := store.CreateProposal(ctx, title)
		if err != nil {
			logger.Fatalf("insert %q: %v", title, err)
		}
		logger.Printf("inserted proposal %d: %s", id, title)
	}
}
