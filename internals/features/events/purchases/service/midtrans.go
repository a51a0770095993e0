package service

import (
	"kursusku_backend/internals/features/events/purchases/model"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var SnapClient snap.Client

// Panggil saat bootstrap app (sandbox)
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// Buat Snap token + redirect_url untuk pembelian satu sesi
func GenerateSnapToken(p model.SessionPurchaseModel, sessionTitle, name, email string) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  p.SessionPurchaseOrderID,
			GrossAmt: p.SessionPurchaseAmount,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    p.SessionPurchaseSessionID.String(),
				Name:  sessionTitle,
				Price: p.SessionPurchaseAmount,
				Qty:   1,
			},
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}

	return resp.Token, resp.RedirectURL, nil
}
