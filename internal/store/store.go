// Package store owns the in-process books: the ledger registry and the
// transaction journal, bootstrapped from and persisted to a key-value
// backend as flat JSON blobs.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
)

const (
	keyLedgers       = "ledgers"
	keyTransactions  = "transactions"
	keySchemaVersion = "schema_version"
)

// schemaVersion guards the one-time seed merge. Bumping it re-runs the
// merge (fresh seed chart plus preserved party ledgers) on next open.
const schemaVersion = 1

// Options configures Open.
type Options struct {
	// Namespace prefixes every key; defaults to "tally".
	Namespace string
	Logger    *slog.Logger
	// SeedTransactions are written only when the journal key is absent,
	// i.e. on the very first open against an empty backend.
	SeedTransactions []journal.Transaction
}

// Store holds the mutable application state. Existing records are never
// mutated, only appended; the registry and journal serialize their own
// access, so concurrent request handlers may read and append freely.
type Store struct {
	kv       KV
	ns       string
	logger   *slog.Logger
	registry *ledger.Registry
	journal  *journal.Journal
}

// Open loads the books from the backend, running the seed migration when
// the stored schema version is missing or older than the current one. The
// migration keeps user-created party ledgers and replaces everything else
// with a fresh seed chart; it happens once per schema version, not on every
// load.
func Open(ctx context.Context, kv KV, opts Options) (*Store, error) {
	s := &Store{
		kv:     kv,
		ns:     opts.Namespace,
		logger: opts.Logger,
	}
	if s.ns == "" {
		s.ns = "tally"
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	stored, storedOK, err := s.loadLedgers(ctx)
	if err != nil {
		return nil, err
	}
	version, err := s.loadSchemaVersion(ctx)
	if err != nil {
		return nil, err
	}

	var chart []ledger.Ledger
	switch {
	case !storedOK:
		chart = ledger.Seed()
	case version < schemaVersion:
		chart = mergeParties(ledger.Seed(), stored)
		s.logger.Info("migrated chart of accounts",
			slog.Int("from_version", version),
			slog.Int("to_version", schemaVersion),
			slog.Int("ledgers", len(chart)))
	default:
		chart = stored
	}
	registry, err := ledger.NewRegistry(chart)
	if err != nil {
		return nil, fmt.Errorf("store: load ledgers: %w", err)
	}
	s.registry = registry

	txs, txsOK, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	if !txsOK {
		txs = opts.SeedTransactions
	}
	s.journal = journal.NewJournal(txs)

	if !storedOK || version < schemaVersion {
		if err := s.Save(ctx); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// mergeParties layers stored party ledgers on top of a fresh seed chart.
// Seed ledgers are never persisted by value; only what users created
// survives a migration.
func mergeParties(seed, stored []ledger.Ledger) []ledger.Ledger {
	merged := seed
	names := make(map[string]struct{}, len(seed))
	for _, l := range seed {
		names[foldName(l.Name)] = struct{}{}
	}
	for _, l := range stored {
		if !l.IsParty {
			continue
		}
		if _, dup := names[foldName(l.Name)]; dup {
			continue
		}
		names[foldName(l.Name)] = struct{}{}
		merged = append(merged, l)
	}
	return merged
}

func (s *Store) loadLedgers(ctx context.Context) ([]ledger.Ledger, bool, error) {
	payload, ok, err := s.kv.Get(ctx, s.key(keyLedgers))
	if err != nil || !ok {
		return nil, false, err
	}
	var out []ledger.Ledger
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, false, fmt.Errorf("store: decode ledgers: %w", err)
	}
	return out, true, nil
}

func (s *Store) loadTransactions(ctx context.Context) ([]journal.Transaction, bool, error) {
	payload, ok, err := s.kv.Get(ctx, s.key(keyTransactions))
	if err != nil || !ok {
		return nil, false, err
	}
	var out []journal.Transaction
	if err := json.Unmarshal(payload, &out); err != nil {
		return nil, false, fmt.Errorf("store: decode transactions: %w", err)
	}
	return out, true, nil
}

func (s *Store) loadSchemaVersion(ctx context.Context) (int, error) {
	payload, ok, err := s.kv.Get(ctx, s.key(keySchemaVersion))
	if err != nil || !ok {
		return 0, err
	}
	version, err := strconv.Atoi(string(payload))
	if err != nil {
		return 0, fmt.Errorf("store: decode schema version: %w", err)
	}
	return version, nil
}

// Registry returns the chart of accounts.
func (s *Store) Registry() *ledger.Registry { return s.registry }

// Journal returns the transaction journal.
func (s *Store) Journal() *journal.Journal { return s.journal }

// Ledgers implements the report engine's Books contract.
func (s *Store) Ledgers() []ledger.Ledger { return s.registry.All() }

// Transactions implements the report engine's Books contract.
func (s *Store) Transactions() []journal.Transaction { return s.journal.All() }

// Save writes both collections and the schema version. The two blobs are
// written concurrently; incremental persistence is deliberately not
// attempted.
func (s *Store) Save(ctx context.Context) error {
	ledgersJSON, err := json.Marshal(s.registry.All())
	if err != nil {
		return fmt.Errorf("store: encode ledgers: %w", err)
	}
	txsJSON, err := json.Marshal(s.journal.All())
	if err != nil {
		return fmt.Errorf("store: encode transactions: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.kv.Set(gctx, s.key(keyLedgers), ledgersJSON) })
	g.Go(func() error { return s.kv.Set(gctx, s.key(keyTransactions), txsJSON) })
	if err := g.Wait(); err != nil {
		return fmt.Errorf("store: save: %w", err)
	}
	return s.kv.Set(ctx, s.key(keySchemaVersion), []byte(strconv.Itoa(schemaVersion)))
}

func (s *Store) key(k string) string {
	return s.ns + ":" + k
}

func foldName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
