package service

import (
	"testing"

	"kursusku_backend/internals/features/events/purchases/model"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		gateway string
		want    StatusTransition
	}{
		{"capture", StatusTransition{Status: model.PurchaseStatusPaid, StampPaid: true, Processed: true}},
		{"settlement", StatusTransition{Status: model.PurchaseStatusPaid, StampPaid: true, Processed: true}},
		{"pending", StatusTransition{Status: model.PurchaseStatusPending, Processed: true}},
		{"expire", StatusTransition{Status: model.PurchaseStatusExpired, Processed: true}},
		{"cancel", StatusTransition{Status: model.PurchaseStatusCanceled, Processed: true}},
		{"deny", StatusTransition{Status: model.PurchaseStatusCanceled, Processed: true}},
		// status asing dibiarkan apa adanya, tidak menebak
		{"refund", StatusTransition{}},
		{"", StatusTransition{}},
	}

	for _, tc := range cases {
		if got := MapTransactionStatus(tc.gateway); got != tc.want {
			t.Fatalf("MapTransactionStatus(%q) = %+v, want %+v", tc.gateway, got, tc.want)
		}
	}
}

func TestOnlySettledStatusesStampPaidAt(t *testing.T) {
	for _, gateway := range []string{"pending", "expire", "cancel", "deny", "refund"} {
		if MapTransactionStatus(gateway).StampPaid {
			t.Fatalf("%q must not stamp paid_at", gateway)
		}
	}
	for _, gateway := range []string{"capture", "settlement"} {
		tr := MapTransactionStatus(gateway)
		if !tr.StampPaid || tr.Status != model.PurchaseStatusPaid {
			t.Fatalf("%q must grant paid access with paid_at: %+v", gateway, tr)
		}
	}
}
