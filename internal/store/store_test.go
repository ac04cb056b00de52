package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bikash4JP/tally-for-mobile/internal/journal"
	"github.com/Bikash4JP/tally-for-mobile/internal/ledger"
)

func newRedisKV(t *testing.T) *RedisKV {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisKV(client)
}

func TestOpenSeedsEmptyBackend(t *testing.T) {
	ctx := context.Background()
	kv := newRedisKV(t)

	seedTx := []journal.Transaction{{
		ID: 1, VoucherType: journal.VoucherReceipt, Date: "2025-12-01",
		DebitLedgerID: "L11", CreditLedgerID: "L1", Amount: 100000,
		Narration: "Opening capital banked",
	}}
	s, err := Open(ctx, kv, Options{SeedTransactions: seedTx})
	require.NoError(t, err)

	assert.Equal(t, len(ledger.Seed()), s.Registry().Len())
	assert.Equal(t, 1, s.Journal().Len())

	// Bootstrap persists immediately; a plain re-open sees the same state.
	s2, err := Open(ctx, kv, Options{})
	require.NoError(t, err)
	assert.Equal(t, s.Registry().Len(), s2.Registry().Len())
	assert.Equal(t, 1, s2.Journal().Len(), "seed transactions must not be re-seeded")
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newRedisKV(t)

	s, err := Open(ctx, kv, Options{})
	require.NoError(t, err)

	party, err := s.Registry().Create("Bhuwan Loan A/C", "Loans & Advances", ledger.NatureLiability, true)
	require.NoError(t, err)
	tx, err := s.Journal().Append(s.Registry(), journal.NewTransaction{
		Date: "2026-08-01", DebitLedgerID: "L11", CreditLedgerID: party.ID, Amount: 100000,
	})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx))

	s2, err := Open(ctx, kv, Options{})
	require.NoError(t, err)

	reloaded, ok := s2.Registry().GetByID(party.ID)
	require.True(t, ok)
	assert.Equal(t, party, reloaded)

	got, ok := s2.Journal().Find(tx.ID)
	require.True(t, ok)
	assert.Equal(t, tx, got)

	// Appends after reload continue the id sequence.
	next, err := s2.Journal().Append(s2.Registry(), journal.NewTransaction{
		Date: "2026-08-02", DebitLedgerID: party.ID, CreditLedgerID: "L10", Amount: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, tx.ID+1, next.ID)
}

func TestMigrationPreservesOnlyPartyLedgers(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	// Legacy data: no schema version key, stored chart with one party
	// ledger, one tampered seed ledger, and one stale non-party extra.
	legacy := []ledger.Ledger{
		{ID: "L10", Name: "Cash in Hand A/C", GroupName: "Tampered", Nature: ledger.NatureLiability},
		{ID: "P1", Name: "Bhuwan Loan A/C", GroupName: "Loans & Advances", Nature: ledger.NatureLiability, IsParty: true},
		{ID: "X1", Name: "Stale Extra A/C", GroupName: "Whatever", Nature: ledger.NatureAsset},
	}
	payload, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "tally:ledgers", payload))

	s, err := Open(ctx, kv, Options{})
	require.NoError(t, err)

	// Seed ledgers are re-seeded from scratch, not taken from storage.
	cash, ok := s.Registry().GetByID("L10")
	require.True(t, ok)
	assert.Equal(t, ledger.NatureAsset, cash.Nature)
	assert.Equal(t, "Cash-in-Hand", cash.GroupName)

	// The party ledger survives, the stale non-party extra does not.
	_, ok = s.Registry().GetByID("P1")
	assert.True(t, ok)
	_, ok = s.Registry().GetByID("X1")
	assert.False(t, ok)

	// The migration ran once: version is recorded, a re-open keeps state.
	s2, err := Open(ctx, kv, Options{})
	require.NoError(t, err)
	assert.Equal(t, s.Registry().Len(), s2.Registry().Len())
}

func TestMigrationSkipsDuplicatePartyNames(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	legacy := []ledger.Ledger{
		{ID: "P1", Name: "cash in hand a/c", Nature: ledger.NatureAsset, IsParty: true},
	}
	payload, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "tally:ledgers", payload))

	s, err := Open(ctx, kv, Options{})
	require.NoError(t, err)
	_, ok := s.Registry().GetByID("P1")
	assert.False(t, ok, "a party shadowing a seed name is dropped by the merge")
}

func TestNamespaceIsolatesStores(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	a, err := Open(ctx, kv, Options{Namespace: "books-a"})
	require.NoError(t, err)
	_, err = a.Journal().Append(a.Registry(), journal.NewTransaction{
		Date: "2026-08-01", DebitLedgerID: "L10", CreditLedgerID: "L20", Amount: 10,
	})
	require.NoError(t, err)
	require.NoError(t, a.Save(ctx))

	b, err := Open(ctx, kv, Options{Namespace: "books-b"})
	require.NoError(t, err)
	assert.Equal(t, 0, b.Journal().Len())
}
