package qrcode

import (
	"testing"

	"academy/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(baseURL string, size int, level string) *qrcodeService {
	return NewQRCodeService(&config.Config{
		Invoice: &config.InvoiceConfig{
			PublicBaseURL:          baseURL,
			QRSize:                 size,
			QRErrorCorrectionLevel: level,
		},
	}).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
		want                 qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "h", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService("", 256, tt.errorCorrectionLevel)
			assert.Equal(t, tt.want, service.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{}).(*qrcodeService)

	assert.Equal(t, defaultQRSize, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
	assert.Equal(t, "/invoices/INV-0A1B2C3D4E", service.InvoiceURL("INV-0A1B2C3D4E"))
}

func TestQRCodeService_InvoiceURL(t *testing.T) {
	service := newTestService("https://academy.example.com/", 256, "M")

	assert.Equal(t, "https://academy.example.com/invoices/INV-0A1B2C3D4E", service.InvoiceURL("INV-0A1B2C3D4E"))
	assert.Equal(t, "https://academy.example.com/invoices/a%2Fb", service.InvoiceURL("a/b"))
}

func TestQRCodeService_GenerateInvoiceQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService("https://academy.example.com", tt.size, "M")

			qrBytes, err := service.GenerateInvoiceQR("INV-0A1B2C3D4E")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateInvoiceQR_Empty(t *testing.T) {
	service := newTestService("", 256, "M")

	_, err := service.GenerateInvoiceQR("")
	assert.Error(t, err)
}
