// Creates a collection from a file of flashcards.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"github.com/domino14/cardvault/config"
	"github.com/domino14/cardvault/internal/seed"
	"github.com/domino14/cardvault/internal/stores"
	"github.com/domino14/cardvault/internal/stores/pgstore"
	"github.com/domino14/cardvault/internal/stores/sqlitestore"
)

type Config struct {
	file          string
	sheet         string
	owner         string
	name          string
	collaborators string
}

// Load loads the configs from the given arguments
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("cardvaultseed", flag.ContinueOnError)
	fs.StringVar(&c.file, "file", "", "TSV, CSV or XLSX file of question/answer rows")
	fs.StringVar(&c.sheet, "sheet", "", "XLSX sheet to read; the first sheet by default")
	fs.StringVar(&c.owner, "owner", "", "user id that owns the new collection")
	fs.StringVar(&c.name, "name", "", "collection name")
	fs.StringVar(&c.collaborators, "collaborators", "", "comma-separated user ids to share the collection with")
	return fs.Parse(args)
}

func openStore(ctx context.Context, cfg *config.Config) (stores.ReviewStore, error) {
	if cfg.DBDriver == "sqlite3" {
		return sqlitestore.Open(cfg.SQLitePath)
	}
	if err := pgstore.Migrate(cfg.DBConnURI); err != nil {
		return nil, err
	}
	return pgstore.Open(ctx, cfg.DBConnURI)
}

func main() {
	config.LoadDotEnv()
	// Database settings come from the environment, seeding options from
	// the command line.
	dbcfg := &config.Config{}
	if err := dbcfg.Load(nil); err != nil {
		log.Fatal().Err(err).Msg("bad-config")
	}
	cfg := &Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if cfg.name == "" {
		base := filepath.Base(cfg.file)
		cfg.name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	cards, err := seed.ReadFile(cfg.file, cfg.sheet)
	if err != nil {
		log.Fatal().Err(err).Str("file", cfg.file).Msg("read-cards")
	}
	ctx := log.Logger.WithContext(context.Background())
	store, err := openStore(ctx, dbcfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open-store")
	}
	defer store.Close()

	c, err := seed.Import(ctx, store, seed.Options{
		OwnerID:       cfg.owner,
		Name:          cfg.name,
		Collaborators: strings.Split(cfg.collaborators, ","),
	}, cards, time.Now().UTC())
	if err != nil {
		log.Fatal().Err(err).Msg("import")
	}
	fmt.Println(c.ID)
}
