package service

import (
	"errors"
	"testing"
	"time"

	"github.com/noren-next/internal/catalog"
	"github.com/noren-next/internal/session"
)

func newTestCartService(t *testing.T) *CartService {
	t.Helper()
	cat, err := catalog.New()
	if err != nil {
		t.Fatalf("build catalog failed: %v", err)
	}
	return NewCartService(session.NewManager(time.Hour), cat)
}

func TestAddItemFromMenu(t *testing.T) {
	svc := newTestCartService(t)

	view, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "ramen-7", Quantity: 2})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if len(view.Items) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(view.Items))
	}
	line := view.Items[0]
	if line.Name != "Tonkotsu Ramen" || line.Price != "$16.00" || line.Quantity != 2 {
		t.Fatalf("unexpected line item: %+v", line)
	}
	if line.Subtotal.String() != "32.00" {
		t.Fatalf("expected subtotal 32.00, got %s", line.Subtotal.String())
	}
	if view.TotalItems != 2 || view.TotalPrice.String() != "32.00" {
		t.Fatalf("unexpected totals: %+v", view)
	}
}

func TestAddItemMergesAcrossCalls(t *testing.T) {
	svc := newTestCartService(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "sushi-1", Quantity: 1}); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	view, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "sushi-1", Quantity: 2})
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(view.Items) != 1 || view.Items[0].Quantity != 3 {
		t.Fatalf("expected single merged line with quantity 3, got %+v", view.Items)
	}
	if view.TotalPrice.String() != "84.00" {
		t.Fatalf("expected total 84.00, got %s", view.TotalPrice.String())
	}
}

func TestAddItemUnknownMenuID(t *testing.T) {
	svc := newTestCartService(t)

	_, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "sushi-999", Quantity: 1})
	if !errors.Is(err, ErrMenuItemNotFound) {
		t.Fatalf("expected ErrMenuItemNotFound, got %v", err)
	}
	_, err = svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "   ", Quantity: 1})
	if !errors.Is(err, ErrCartItemInvalid) {
		t.Fatalf("expected ErrCartItemInvalid, got %v", err)
	}
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	svc := newTestCartService(t)

	view, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "mochi-13"})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if view.TotalItems != 1 {
		t.Fatalf("expected quantity defaulted to 1, got %d", view.TotalItems)
	}
}

func TestSessionIsolation(t *testing.T) {
	svc := newTestCartService(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "ramen-7", Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	view, err := svc.View("s2")
	if err != nil {
		t.Fatalf("view failed: %v", err)
	}
	if len(view.Items) != 0 || view.TotalItems != 0 {
		t.Fatalf("sessions must be isolated, got %+v", view)
	}
}

func TestUpdateQuantityDeleteOnZeroViaService(t *testing.T) {
	svc := newTestCartService(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "ramen-7", Quantity: 2}); err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	view, err := svc.UpdateQuantity("s1", "ramen-7", 0)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(view.Items) != 0 {
		t.Fatalf("expected delete-on-zero, got %+v", view.Items)
	}
}

func TestRemoveThenClearScenario(t *testing.T) {
	svc := newTestCartService(t)

	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "ramen-7", Quantity: 2}); err != nil {
		t.Fatalf("add ramen failed: %v", err)
	}
	if _, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "mochi-13", Quantity: 1}); err != nil {
		t.Fatalf("add mochi failed: %v", err)
	}
	if _, err := svc.Open("s1"); err != nil {
		t.Fatalf("open failed: %v", err)
	}

	view, err := svc.RemoveItem("s1", "ramen-7")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if view.TotalItems != 1 || view.TotalPrice.String() != "12.00" {
		t.Fatalf("unexpected totals after remove: %+v", view)
	}

	view, err = svc.Clear("s1")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if len(view.Items) != 0 || view.TotalPrice.String() != "0.00" {
		t.Fatalf("expected empty cart, got %+v", view)
	}
	if !view.IsOpen {
		t.Fatalf("clear must not close the panel")
	}
}

func TestVisibilityOperations(t *testing.T) {
	svc := newTestCartService(t)

	view, err := svc.Toggle("s1")
	if err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if !view.IsOpen {
		t.Fatalf("expected open after toggle from closed")
	}
	view, err = svc.Close("s1")
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if view.IsOpen {
		t.Fatalf("expected closed after close")
	}
}

func TestImageFallsBackToCategoryIcon(t *testing.T) {
	svc := newTestCartService(t)

	view, err := svc.AddItem(AddCartItemInput{SessionID: "s1", ItemID: "sushi-1", Quantity: 1})
	if err != nil {
		t.Fatalf("add item failed: %v", err)
	}
	if view.Items[0].Image != "/icons/sushi-icon.svg" {
		t.Fatalf("expected category icon fallback, got %s", view.Items[0].Image)
	}
}

func TestEmptySessionIDRejected(t *testing.T) {
	svc := newTestCartService(t)

	if _, err := svc.View(""); !errors.Is(err, ErrSessionInvalid) {
		t.Fatalf("expected ErrSessionInvalid, got %v", err)
	}
}
