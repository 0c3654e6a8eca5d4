package service

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/sgc-amambai/contracts/date"
	"github.com/sgc-amambai/contracts/model"
)

func testContract(subject string) model.Contract {
	return model.Contract{
		Subject:    subject,
		Contractor: "Construtora MS Ltda",
		Value:      decimal.NewFromInt(1000),
		StartDate:  date.MustParse("2024-01-01"),
		EndDate:    date.MustParse("2024-12-31"),
		Category:   model.CategoryWorks,
	}
}

func TestContractStoreRegisterAndGet(t *testing.T) {
	store := NewContractStore(100)

	c, err := store.Register(testContract("Pavimentação"))
	if err != nil {
		t.Fatalf("Expected registration to succeed, got %v", err)
	}
	if c.ID != 1 {
		t.Errorf("Expected id 1, got %d", c.ID)
	}

	retrieved, ok := store.Get(1)
	if !ok {
		t.Fatal("Expected to retrieve contract")
	}
	if retrieved.Subject != "Pavimentação" {
		t.Errorf("Expected subject Pavimentação, got %s", retrieved.Subject)
	}

	if _, ok := store.Get(42); ok {
		t.Error("Expected no contract for unknown id")
	}
}

func TestContractStoreIDsAreNeverReused(t *testing.T) {
	store := NewContractStore(0)

	first, _ := store.Register(testContract("a"))

	bad := testContract("")
	if _, err := store.Register(bad); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}

	withID := testContract("b")
	withID.ID = 99
	second, err := store.Register(withID)
	if err != nil {
		t.Fatalf("Expected registration to succeed, got %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
	if store.Count() != 2 {
		t.Errorf("Expected 2 contracts, got %d", store.Count())
	}
}

func TestContractStoreRejectsInvalid(t *testing.T) {
	store := NewContractStore(0)

	c := testContract("Merenda")
	c.EndDate = c.StartDate.Add(-1)
	if _, err := store.Register(c); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Expected end before start to be rejected, got %v", err)
	}

	c = testContract("Merenda")
	c.Value = decimal.NewFromInt(-5)
	if _, err := store.Register(c); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Expected negative value to be rejected, got %v", err)
	}

	if store.Count() != 0 {
		t.Errorf("Expected no contracts, got %d", store.Count())
	}
}

func TestContractStoreUpdate(t *testing.T) {
	store := NewContractStore(0)
	store.Register(testContract("a"))
	store.Register(testContract("b"))

	edit := testContract("b amended")
	edit.EndDate = date.MustParse("2025-06-30")
	updated, err := store.Update(2, edit)
	if err != nil {
		t.Fatalf("Expected update to succeed, got %v", err)
	}
	if updated.ID != 2 {
		t.Errorf("Expected id 2 to be kept, got %d", updated.ID)
	}

	got, _ := store.Get(2)
	if got.Subject != "b amended" || got.EndDate != date.MustParse("2025-06-30") {
		t.Errorf("Expected amended contract, got %+v", got)
	}

	snapshot := store.Snapshot()
	if snapshot[0].Subject != "a" || snapshot[1].Subject != "b amended" {
		t.Errorf("Expected registration order to be kept, got %q, %q", snapshot[0].Subject, snapshot[1].Subject)
	}

	if _, err := store.Update(7, testContract("x")); !errors.Is(err, ErrContractNotFound) {
		t.Errorf("Expected ErrContractNotFound, got %v", err)
	}

	invalid := testContract("")
	if _, err := store.Update(1, invalid); !errors.Is(err, model.ErrValidation) {
		t.Errorf("Expected validation error, got %v", err)
	}
	if got, _ := store.Get(1); got.Subject != "a" {
		t.Errorf("Expected rejected edit to leave contract untouched, got %q", got.Subject)
	}
}

func TestContractStoreLimit(t *testing.T) {
	store := NewContractStore(2)

	store.Register(testContract("a"))
	store.Register(testContract("b"))

	if _, err := store.Register(testContract("c")); !errors.Is(err, ErrStoreFull) {
		t.Errorf("Expected ErrStoreFull, got %v", err)
	}
	if store.Count() != 2 {
		t.Errorf("Expected 2 contracts, got %d", store.Count())
	}
}

func TestContractStoreUnlimitedContracts(t *testing.T) {
	store := NewContractStore(0) // Unlimited

	for i := 0; i < 10; i++ {
		store.Register(testContract(fmt.Sprintf("contract %d", i)))
	}

	if store.Count() != 10 {
		t.Errorf("Expected 10 contracts, got %d", store.Count())
	}
}

func TestContractStoreSnapshotIsACopy(t *testing.T) {
	store := NewContractStore(0)
	store.Register(testContract("a"))

	snapshot := store.Snapshot()
	snapshot[0].Subject = "changed"

	if got, _ := store.Get(1); got.Subject != "a" {
		t.Errorf("Expected store to be unaffected by snapshot edits, got %q", got.Subject)
	}
}

func TestContractStoreConcurrentAccess(t *testing.T) {
	store := NewContractStore(0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			store.Register(testContract(fmt.Sprintf("contract %d", i)))
		}(i)
		go func() {
			defer wg.Done()
			snapshot := store.Snapshot()
			for j, c := range snapshot {
				if c.ID == 0 {
					t.Errorf("Snapshot exposed unregistered contract at %d", j)
				}
			}
		}()
	}
	wg.Wait()

	if store.Count() != 20 {
		t.Errorf("Expected 20 contracts, got %d", store.Count())
	}
}
