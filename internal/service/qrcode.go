package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(userID string, grandTotal float64) ([]byte, error)
}

// DefaultQRGenerator encodes a delivery-confirmation link the rider scans at handover.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(userID string, grandTotal float64) ([]byte, error) {
	qrData := fmt.Sprintf("%s/confirm.html?user=%s&total=%.2f", g.BaseURL, userID, grandTotal)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
