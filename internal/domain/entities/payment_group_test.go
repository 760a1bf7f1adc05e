package entities

import (
	"testing"
	"time"
)

func TestPaymentGroup_Open(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		status GroupStatus
		expiry time.Time
		want   bool
	}{
		{"incomplete within window", GroupStatusIncomplete, now.Add(time.Hour), true},
		{"incomplete past window", GroupStatusIncomplete, now.Add(-time.Minute), false},
		{"complete", GroupStatusComplete, now.Add(time.Hour), false},
		{"cancelled", GroupStatusCancelled, now.Add(time.Hour), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := PaymentGroup{Status: tc.status, ExpiresAt: tc.expiry}
			if got := g.Open(now); got != tc.want {
				t.Fatalf("Open() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPaymentReference_IsExpired(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	r := PaymentReference{ExpiresAt: now}
	if r.IsExpired(now) {
		t.Fatalf("reference must not expire at the exact boundary")
	}
	if !r.IsExpired(now.Add(time.Second)) {
		t.Fatalf("reference must expire after the boundary")
	}
}
