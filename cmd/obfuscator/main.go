// Package main runs the bank records obfuscation batch: it loads a full
// snapshot of owners, accounts and register entries, anonymizes it and
// writes the result for reuse as test data.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/go-petr/bank-obfuscator/internal/domain"
	"github.com/go-petr/bank-obfuscator/internal/obfuscation"
	"github.com/go-petr/bank-obfuscator/internal/recordstore"
	"github.com/go-petr/bank-obfuscator/pkg/configpkg"
	"github.com/go-petr/bank-obfuscator/pkg/dbpkg"
	"github.com/go-petr/bank-obfuscator/pkg/loggerpkg"

	_ "github.com/lib/pq"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := loggerpkg.New(config).With().Str("run_id", uuid.NewString()).Logger()
	ctx := logger.WithContext(context.Background())

	var store recordstore.Store

	if config.DBDriver != "" {
		db, err := dbpkg.Setup(config.DBDriver, config.DBSource)
		if err != nil {
			logger.Fatal().Err(err).Msg("cannot connect to database")
		}

		store = recordstore.NewRepoPGS(db)
	} else {
		store = recordstore.NewCSVStore(config.RecordsDir, config.InputSuffix, config.OutputSuffix)
	}

	seed := config.ObfuscationSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info().Int64("seed", seed).Msg("loading production records")

	records, err := store.Load(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot load records")
	}

	if err := records.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("input snapshot is not closed")
	}

	service := obfuscation.New(rand.New(rand.NewSource(seed)))

	obfuscated, err := service.Obfuscate(ctx, records)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot obfuscate records")
	}

	if err := checkCounts(records, obfuscated); err != nil {
		logger.Fatal().Err(err).Msg("record counts diverged")
	}

	if err := store.Save(ctx, obfuscated); err != nil {
		logger.Fatal().Err(err).Msg("cannot save obfuscated records")
	}

	logger.Info().
		Int("owners", len(obfuscated.Owners)).
		Int("accounts", len(obfuscated.Accounts)).
		Int("register_entries", len(obfuscated.RegisterEntries)).
		Msg("saved obfuscated records")
}

// checkCounts verifies the pipeline's cardinality guarantee before anything
// is persisted.
func checkCounts(in, out domain.BankRecords) error {
	if len(out.Owners) != len(in.Owners) {
		return fmt.Errorf("owners count mismatch: %d != %d", len(out.Owners), len(in.Owners))
	}

	if len(out.Accounts) != len(in.Accounts) {
		return fmt.Errorf("accounts count mismatch: %d != %d", len(out.Accounts), len(in.Accounts))
	}

	if len(out.RegisterEntries) != len(in.RegisterEntries) {
		return fmt.Errorf("register entries count mismatch: %d != %d",
			len(out.RegisterEntries), len(in.RegisterEntries))
	}

	return nil
}
