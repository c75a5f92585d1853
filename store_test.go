package alphatrade

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.db")
	store, err := OpenStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestListAssetsSeedsWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	assets, err := store.ListAssets()
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}

	want := SeedAssets()
	if len(assets) != len(want) {
		t.Fatalf("got %d assets, want %d", len(assets), len(want))
	}
	for i := range want {
		if !assets[i].Equal(want[i]) {
			t.Errorf("asset %d = %+v, want seed %+v", i, assets[i], want[i])
		}
	}
}

func TestUpsertAssetAppends(t *testing.T) {
	store, _ := newTestStore(t)

	house, err := NewAsset("House", RealEstate, M(300000, "USD"), Money{}, Quantity{})
	if err != nil {
		t.Fatalf("NewAsset() error = %v", err)
	}
	if err := store.UpsertAsset(house); err != nil {
		t.Fatalf("UpsertAsset() error = %v", err)
	}

	assets, err := store.ListAssets()
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 4 {
		t.Fatalf("got %d assets, want 4", len(assets))
	}
	if !assets[3].Equal(house) {
		t.Errorf("new asset not appended at the end: %+v", assets[3])
	}
}

func TestUpsertAssetReplacesInPlace(t *testing.T) {
	store, _ := newTestStore(t)

	aapl := SeedAssets()[1]
	aapl.Value = M(16000, "USD")
	if err := store.UpsertAsset(aapl); err != nil {
		t.Fatalf("UpsertAsset() error = %v", err)
	}

	assets, err := store.ListAssets()
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("got %d assets, want 3", len(assets))
	}
	// The record keeps its position in the collection.
	if !assets[1].Equal(aapl) {
		t.Errorf("asset 1 = %+v, want updated %+v", assets[1], aapl)
	}
	if !assets[0].Equal(SeedAssets()[0]) || !assets[2].Equal(SeedAssets()[2]) {
		t.Error("neighboring assets were disturbed by the upsert")
	}
}

func TestUpsertAssetRejectsInvalid(t *testing.T) {
	store, _ := newTestStore(t)

	bad := Asset{ID: "x", Name: "Broken", Type: "BOND", Value: M(1, "USD"), Cost: M(1, "USD")}
	if err := store.UpsertAsset(bad); err == nil {
		t.Fatal("UpsertAsset(invalid) error = nil, want error")
	}

	assets, err := store.ListAssets()
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 3 {
		t.Errorf("got %d assets after rejected upsert, want 3", len(assets))
	}
}

func TestListTransactionsSeedsWhenEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	txs, err := store.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("got %d trades, want 1 seed trade", len(txs))
	}
	if txs[0].ID != "t1" || txs[0].Symbol != "AAPL" {
		t.Errorf("seed trade = %+v, want t1 AAPL", txs[0])
	}
}

func TestAppendTransactionPrepends(t *testing.T) {
	store, _ := newTestStore(t)

	tx := NewTransaction("MSFT", Buy, M(410.55, ""), Q(2))
	if err := store.AppendTransaction(tx); err != nil {
		t.Fatalf("AppendTransaction() error = %v", err)
	}

	txs, err := store.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d trades, want 2", len(txs))
	}
	// Newest first, prior records untouched.
	if !txs[0].Equal(tx) {
		t.Errorf("trade 0 = %+v, want the new trade first", txs[0])
	}
	if txs[1].ID != "t1" {
		t.Errorf("trade 1 = %+v, want the seed trade preserved", txs[1])
	}
}

func TestAppendTransactionRejectsInvalid(t *testing.T) {
	store, _ := newTestStore(t)

	bad := NewTransaction("MSFT", Buy, M(410.55, ""), Q(2))
	bad.Total = M(1, "")
	if err := store.AppendTransaction(bad); err == nil {
		t.Fatal("AppendTransaction(invalid) error = nil, want error")
	}

	txs, err := store.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 1 {
		t.Errorf("got %d trades after rejected append, want 1", len(txs))
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)

	house, err := NewAsset("House", RealEstate, M(300000, "USD"), Money{}, Quantity{})
	if err != nil {
		t.Fatalf("NewAsset() error = %v", err)
	}
	if err := store.UpsertAsset(house); err != nil {
		t.Fatalf("UpsertAsset() error = %v", err)
	}
	tx := NewTransaction("MSFT", Sell, M(410.55, ""), Q(2))
	if err := store.AppendTransaction(tx); err != nil {
		t.Fatalf("AppendTransaction() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	reopened, err := OpenStore(path, zerolog.Nop())
	if err != nil {
		t.Fatalf("OpenStore(reopen) error = %v", err)
	}
	defer reopened.Close()

	assets, err := reopened.ListAssets()
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(assets) != 4 || !assets[3].Equal(house) {
		t.Errorf("reopened assets = %d records, want 4 with the house last", len(assets))
	}

	txs, err := reopened.ListTransactions()
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if len(txs) != 2 || !txs[0].Equal(tx) {
		t.Errorf("reopened trades = %d records, want 2 with the sell first", len(txs))
	}
}
