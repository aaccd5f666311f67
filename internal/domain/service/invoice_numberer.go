package service

// InvoiceNumberGenerator produces unguessable invoice numbers.
// Uniqueness is guaranteed by storage, not by the generator.
type InvoiceNumberGenerator interface {
	Generate() (string, error)
}
