package types

import (
	"encoding/json"
	"testing"
)

func TestBalance_Unmarshal(t *testing.T) {
	raw := []byte(`{"currencies": {"USD": 150000, "EUR": 98000}, "stocks": {"AAPL": 3}}`)
	var bal Balance
	if err := json.Unmarshal(raw, &bal); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if bal.Currencies["USD"] != 150000 || bal.Currencies["EUR"] != 98000 {
		t.Fatalf("unexpected currencies: %+v", bal.Currencies)
	}
	if bal.Stocks["AAPL"] != 3 {
		t.Fatalf("unexpected stocks: %+v", bal.Stocks)
	}
	if _, merged := bal.Stocks["USD"]; merged {
		t.Fatal("currency symbol leaked into stocks")
	}
}

func TestBalance_DisplayCurrency(t *testing.T) {
	bal := Balance{Currencies: map[string]int64{"USD": 150000}}
	if got := bal.DisplayCurrency("USD", 2).StringFixed(2); got != "1500.00" {
		t.Errorf("display value: got %s, want 1500.00", got)
	}
	if got := bal.DisplayCurrency("JPY", 2).StringFixed(2); got != "0.00" {
		t.Errorf("unknown symbol must display as zero, got %s", got)
	}
}

func TestHistoryEntry_Unmarshal(t *testing.T) {
	raw := []byte(`{
		"type": "currency",
		"operation_type": "deposit",
		"timestamp": 1700000100,
		"source": 0,
		"dest": 1,
		"symbol": "USD",
		"amount": 150000
	}`)
	var entry HistoryEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if entry.Type != AssetTypeCurrency {
		t.Errorf("type: got %s, want %s", entry.Type, AssetTypeCurrency)
	}
	if entry.OperationType != OperationDeposit {
		t.Errorf("operation: got %s, want %s", entry.OperationType, OperationDeposit)
	}
	if entry.Amount != 150000 || entry.Symbol != "USD" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestConfig_Unmarshal(t *testing.T) {
	raw := []byte(`{
		"decimal_places": 2,
		"base_currency": {"id": 1, "symbol": "USD", "name": "US Dollar", "supply": 1000000, "issuer_id": null, "description": "base"}
	}`)
	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if cfg.DecimalPlaces != 2 {
		t.Errorf("decimal_places: got %d, want 2", cfg.DecimalPlaces)
	}
	if cfg.BaseCurrency.Symbol != "USD" || cfg.BaseCurrency.IssuerID != nil {
		t.Errorf("unexpected base currency: %+v", cfg.BaseCurrency)
	}
	if cfg.BaseCurrency.Description == nil || *cfg.BaseCurrency.Description != "base" {
		t.Errorf("description not decoded: %v", cfg.BaseCurrency.Description)
	}
}
