// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// OrdersPageSize is the number of orders requested per page.
const OrdersPageSize = 20

// Order is one row of the getOrders result.
type Order struct {
	ID            string        `json:"id"`
	OrderID       string        `json:"orderId"`
	User          *OrderUser    `json:"user"`
	Subtotal      float64       `json:"subtotal"`
	CreatedAt     Timestamp     `json:"created_at"`
	PaymentStatus bool          `json:"paymentStatus"`
	Payment       *OrderPayment `json:"payment"`
}

type OrderUser struct {
	Name string `json:"name"`
}

type OrderPayment struct {
	PaymentMethod string `json:"paymentMethod"`
}

// CustomerName returns the ordering user's name, or "" for guest orders.
func (o Order) CustomerName() string {
	if o.User == nil {
		return ""
	}
	return o.User.Name
}

// PaidInCash reports whether the order was paid on delivery.
func (o Order) PaidInCash() bool {
	return o.Payment != nil && o.Payment.PaymentMethod == "cash"
}

// IsPaid reports whether the order counts as paid. Cash orders always do.
func (o Order) IsPaid() bool {
	return o.PaidInCash() || o.PaymentStatus
}

// PaymentLabel is the payment column text.
func (o Order) PaymentLabel() string {
	switch {
	case o.PaidInCash():
		return "Paid (Cash)"
	case o.PaymentStatus:
		return "Paid"
	default:
		return "Unpaid"
	}
}

// FormattedTotal renders the subtotal in taka.
func (o Order) FormattedTotal() string {
	return "৳" + strconv.FormatFloat(o.Subtotal, 'f', -1, 64)
}

// FormattedDate renders the creation date as "02 Jan 2006", or "" if unknown.
func (o Order) FormattedDate() string {
	if o.CreatedAt.IsZero() {
		return ""
	}
	return o.CreatedAt.Format("02 Jan 2006")
}

// OrdersMeta is the pagination block of the getOrders result.
type OrdersMeta struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
}

// OrdersPage is the getOrders result.
type OrdersPage struct {
	Orders []Order    `json:"results"`
	Meta   OrdersMeta `json:"meta"`
}

// HasPrev reports whether a page before page exists.
func (p OrdersPage) HasPrev(page int) bool {
	return page > 1
}

// HasNext reports whether a page after page exists.
func (p OrdersPage) HasNext(page int) bool {
	return page < p.Meta.TotalPages
}

// Timestamp decodes the created_at field, which the API sends either as an
// RFC 3339 string or as Unix milliseconds (number or numeric string).
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || len(b) == 0 {
		*t = Timestamp{}
		return nil
	}

	if b[0] != '"' {
		ms, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", b, err)
		}
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = time.UnixMilli(ms).UTC()
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}
