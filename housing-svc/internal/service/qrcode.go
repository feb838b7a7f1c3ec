package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(housingID string) ([]byte, error)
}

// DefaultQRGenerator encodes a link to the housing's review page.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(housingID string) ([]byte, error) {
	return qrcode.Encode(g.Link(housingID), qrcode.Medium, 256)
}

func (g DefaultQRGenerator) Link(housingID string) string {
	return fmt.Sprintf("%s/housings/%s", g.BaseURL, housingID)
}
