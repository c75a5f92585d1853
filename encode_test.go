package alphatrade

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/PaesslerAG/jsonpath"
)

// jval decodes raw JSON and resolves a jsonpath expression against it.
func jval(t *testing.T, raw []byte, path string) interface{} {
	t.Helper()
	var obj interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	val, err := jsonpath.Get(path, obj)
	if err != nil {
		t.Fatalf("jsonpath %q: %v", path, err)
	}
	return val
}

func TestEncodeAssetsCanonicalForm(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeAssets(&buf, SeedAssets()); err != nil {
		t.Fatalf("EncodeAssets() error = %v", err)
	}
	raw := buf.Bytes()

	// Field order is fixed, so the stored form is diff-friendly.
	want := `{"id":"1","name":"Cash (USD)","type":"CASH","value":50000,"cost":50000,"currency":"USD"}`
	if !bytes.Contains(raw, []byte(want)) {
		t.Errorf("encoded assets do not contain canonical record\nwant %s\n  in %s", want, raw)
	}

	if got := jval(t, raw, "$[1].name"); got != "AAPL shares" {
		t.Errorf("$[1].name = %v, want %q", got, "AAPL shares")
	}
	if got := jval(t, raw, "$[1].quantity"); got != float64(100) {
		t.Errorf("$[1].quantity = %v, want 100", got)
	}
	if got := jval(t, raw, "$[2].quantity"); got != 0.2 {
		t.Errorf("$[2].quantity = %v, want 0.2", got)
	}
}

func TestEncodeAssetsOmitsZeroQuantity(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeAssets(&buf, SeedAssets()); err != nil {
		t.Fatalf("EncodeAssets() error = %v", err)
	}

	// The cash asset tracks no quantity; the field must be absent, not 0.
	var records []map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, ok := records[0]["quantity"]; ok {
		t.Errorf("cash record carries a quantity field: %v", records[0])
	}
}

func TestAssetsRoundTrip(t *testing.T) {
	want := SeedAssets()

	var buf bytes.Buffer
	if err := EncodeAssets(&buf, want); err != nil {
		t.Fatalf("EncodeAssets() error = %v", err)
	}
	got, err := DecodeAssets(&buf)
	if err != nil {
		t.Fatalf("DecodeAssets() error = %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("decoded %d assets, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("asset %d changed:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestTransactionsRoundTrip(t *testing.T) {
	want := append([]Transaction{NewTransaction("MSFT", Buy, M(410.55, ""), Q(2))}, SeedTransactions()...)

	var buf bytes.Buffer
	if err := EncodeTransactions(&buf, want); err != nil {
		t.Fatalf("EncodeTransactions() error = %v", err)
	}
	raw := append([]byte(nil), buf.Bytes()...)

	if got := jval(t, raw, "$[0].symbol"); got != "MSFT" {
		t.Errorf("$[0].symbol = %v, want %q", got, "MSFT")
	}
	if got := jval(t, raw, "$[1].total"); got != float64(14000) {
		t.Errorf("$[1].total = %v, want 14000", got)
	}

	got, err := DecodeTransactions(&buf)
	if err != nil {
		t.Fatalf("DecodeTransactions() error = %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("decoded %d trades, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("trade %d changed:\n got %+v\nwant %+v", i, got[i], want[i])
		}
	}
}

func TestDecodeAssetsMalformed(t *testing.T) {
	if _, err := DecodeAssets(bytes.NewReader([]byte(`{"not":"an array"}`))); err == nil {
		t.Fatal("DecodeAssets(object) error = nil, want error")
	}
}
