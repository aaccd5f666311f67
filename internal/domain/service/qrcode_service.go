package service

// QRCodeService renders QR codes for shareable receipt links.
type QRCodeService interface {
	// GenerateInvoiceQR returns a PNG encoding the public URL of the invoice.
	GenerateInvoiceQR(invoiceNumber string) ([]byte, error)
}
