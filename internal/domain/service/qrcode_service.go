package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateVoucherQR renders a voucher code as a PNG QR image for in-store scanning.
	GenerateVoucherQR(code string) ([]byte, error)

	// ParseVoucherQR extracts the voucher code from scanned QR payload data.
	ParseVoucherQR(qrData string) (string, error)
}
