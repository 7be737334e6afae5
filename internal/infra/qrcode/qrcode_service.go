package qrcode

import (
	"encoding/json"
	"fmt"

	"dealspot/internal/domain/entity"
	"dealspot/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	Code string `json:"code"`
	Type string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateVoucherQR renders a voucher code as a PNG QR image.
func (s *qrcodeService) GenerateVoucherQR(code string) ([]byte, error) {
	if !entity.HasVoucherCodePrefix(code) {
		return nil, fmt.Errorf("not a voucher code: %s", code)
	}

	data := QRCodeData{
		Code: code,
		Type: "voucher",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseVoucherQR parses scanned QR payload data and returns the voucher code.
// The DS- prefix check lets scanners reject non-voucher payloads without a
// storage lookup.
func (s *qrcodeService) ParseVoucherQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != "voucher" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if !entity.HasVoucherCodePrefix(data.Code) {
		return "", fmt.Errorf("invalid voucher code format")
	}

	return data.Code, nil
}
