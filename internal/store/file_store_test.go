// internal/store/file_store_test.go
package store_test

import (
	"testing"
	"time"

	"toybox/internal/domain"
	"toybox/internal/store"
)

func TestPlans_SaveLoad_OK(t *testing.T) {
	home := t.TempDir()

	var ps domain.PlannerStore = store.NewFileStore(home)

	entries := []domain.PlanEntry{
		{ID: "a", Date: "2026-08-31", At: "09:00", Title: "standup"},
		{ID: "b", Date: "2026-08-31", At: "12:30", Title: "lunch", Done: true},
	}
	if err := ps.SavePlans(entries); err != nil {
		t.Fatalf("save plans: %v", err)
	}

	got, err := ps.LoadPlans()
	if err != nil {
		t.Fatalf("load plans: %v", err)
	}
	if len(got) != 2 || got[0].Title != "standup" || !got[1].Done {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestPlans_MissingFile_Empty(t *testing.T) {
	var ps domain.PlannerStore = store.NewFileStore(t.TempDir())

	got, err := ps.LoadPlans()
	if err != nil {
		t.Fatalf("load plans: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty, got %+v", got)
	}
}

func TestSeats_SaveLoad_OK(t *testing.T) {
	var ss domain.SeatStore = store.NewFileStore(t.TempDir())

	if _, ok, err := ss.LoadSeats(); err != nil || ok {
		t.Fatalf("expected no seat map yet (ok=%v err=%v)", ok, err)
	}
	m := domain.SeatMap{Rows: []string{"..x.", "x..."}}
	if err := ss.SaveSeats(m); err != nil {
		t.Fatalf("save seats: %v", err)
	}
	got, ok, err := ss.LoadSeats()
	if err != nil || !ok {
		t.Fatalf("load seats: ok=%v err=%v", ok, err)
	}
	if got.Rows[0] != "..x." || got.Rows[1] != "x..." {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestInventory_SaveLoad_OK(t *testing.T) {
	var is domain.InventoryStore = store.NewFileStore(t.TempDir())

	items := []domain.InventoryItem{{Name: "widget", Quantity: 3, UnitCost: 250}}
	if err := is.SaveInventory(items); err != nil {
		t.Fatalf("save inventory: %v", err)
	}
	got, err := is.LoadInventory()
	if err != nil {
		t.Fatalf("load inventory: %v", err)
	}
	if len(got) != 1 || got[0].Quantity != 3 || got[0].UnitCost != 250 {
		t.Fatalf("mismatch after load: %+v", got)
	}
}

func TestVault_AddList_OK(t *testing.T) {
	home := t.TempDir()
	pass := "pass"

	var ts domain.TaxStore = store.NewVault(home)

	r := domain.TaxRecord{
		ID: "r1", Year: 2025, Kind: "income", Amount: 1234500,
		Reference: "W-2", AddedAt: time.Now(),
	}
	if err := ts.AddRecord(pass, r); err != nil {
		t.Fatalf("add record: %v", err)
	}

	got, err := ts.ListRecords(pass, 2025)
	if err != nil {
		t.Fatalf("list records: %v", err)
	}
	if len(got) != 1 || got[0].Amount != 1234500 || got[0].Kind != "income" {
		t.Fatalf("mismatch after load: %+v", got)
	}
	if got, err := ts.ListRecords(pass, 1999); err != nil || len(got) != 0 {
		t.Fatalf("expected no records for 1999 (err=%v got=%+v)", err, got)
	}
}

func TestVault_WrongPassphrase_Fails(t *testing.T) {
	home := t.TempDir()
	var ts domain.TaxStore = store.NewVault(home)

	if err := ts.AddRecord("correct", domain.TaxRecord{ID: "r1", Year: 2025}); err != nil {
		t.Fatalf("add record: %v", err)
	}
	if _, err := ts.ListRecords("wrong", 0); err == nil {
		t.Fatal("expected error with wrong passphrase")
	}
}
