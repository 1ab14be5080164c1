package request

import (
	"errors"
	"testing"
)

func TestEditItemRequest_ResolveLineItem(t *testing.T) {
	t.Run("valid draft", func(t *testing.T) {
		r := EditItemRequest{Category: " Civil ", Description: " Sand ", Unit: " m3 ", Rate: " 100 ", Quantity: "5"}
		item, field, err := r.ResolveLineItem()
		if err != nil {
			t.Fatalf("unexpected error: %v (field %q)", err, field)
		}
		if item.Category != "Civil" || item.Description != "Sand" || item.Unit != "m3" {
			t.Fatalf("expected trimmed text fields, got %+v", item)
		}
		if item.Rate != 100 || item.Quantity != 5 {
			t.Fatalf("unexpected numbers: %+v", item)
		}
		if item.Amount != 0 {
			t.Fatalf("amount derivation is not the boundary's job, got %v", item.Amount)
		}
	})

	t.Run("non-numeric rate names Rate", func(t *testing.T) {
		r := EditItemRequest{Rate: "abc", Quantity: "5"}
		_, field, err := r.ResolveLineItem()
		if !errors.Is(err, ErrInvalidNumericField) {
			t.Fatalf("expected ErrInvalidNumericField, got %v", err)
		}
		if field != "Rate" {
			t.Fatalf("expected field Rate, got %q", field)
		}
	})

	t.Run("non-numeric quantity names Quantity", func(t *testing.T) {
		r := EditItemRequest{Rate: "100", Quantity: "lots"}
		_, field, err := r.ResolveLineItem()
		if !errors.Is(err, ErrInvalidNumericField) {
			t.Fatalf("expected ErrInvalidNumericField, got %v", err)
		}
		if field != "Quantity" {
			t.Fatalf("expected field Quantity, got %q", field)
		}
	})

	t.Run("negative numbers pass the numeric check", func(t *testing.T) {
		r := EditItemRequest{Rate: "-2", Quantity: "3"}
		item, _, err := r.ResolveLineItem()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Rate != -2 {
			t.Fatalf("expected rate -2, got %v", item.Rate)
		}
	})
}

func TestSetStatusRequest_Resolve(t *testing.T) {
	r := SetStatusRequest{Email: " Bob@Outside.org ", Status: " Approved "}
	if got := r.ResolveEmail(); got != "bob@outside.org" {
		t.Fatalf("expected normalized email, got %q", got)
	}
	status, err := r.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(status) != "approved" {
		t.Fatalf("expected approved, got %q", status)
	}

	if _, err := (SetStatusRequest{Status: "banned"}).ResolveStatus(); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}
