package qrcode

import (
	"net/url"
	"strings"

	"academy/config"
	"academy/internal/domain/service"
	"academy/internal/errors"

	"github.com/skip2/go-qrcode"
)

const defaultQRSize = 256

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	var (
		baseURL string
		size    int
		level   string
	)
	if cfg.Invoice != nil {
		baseURL = cfg.Invoice.PublicBaseURL
		size = cfg.Invoice.QRSize
		level = cfg.Invoice.QRErrorCorrectionLevel
	}
	if size <= 0 {
		size = defaultQRSize
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(baseURL, "/"),
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToUpper(name) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateInvoiceQR encodes the public invoice URL as a PNG.
func (s *qrcodeService) GenerateInvoiceQR(invoiceNumber string) ([]byte, error) {
	if invoiceNumber == "" {
		return nil, errors.New("invoice number is required")
	}

	qrCode, err := qrcode.New(s.InvoiceURL(invoiceNumber), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// InvoiceURL returns the shareable lookup link. Without a base URL it is
// the path alone.
func (s *qrcodeService) InvoiceURL(invoiceNumber string) string {
	return s.baseURL + "/invoices/" + url.PathEscape(invoiceNumber)
}
