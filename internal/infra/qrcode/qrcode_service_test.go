package qrcode

import (
	"encoding/json"
	"testing"
	"time"

	"dealspot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateVoucherQR(t *testing.T) {
	service := NewQRCodeService(256, "M")
	code := entity.NewVoucherCode(time.Now())

	qrBytes, err := service.GenerateVoucherQR(code)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateVoucherQR_RejectsNonVoucherInput(t *testing.T) {
	service := NewQRCodeService(256, "M")

	_, err := service.GenerateVoucherQR("GIFTCARD-123456")
	assert.Error(t, err)
}

func TestQRCodeService_ParseVoucherQR_RoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M")
	code := "DS-1700000000000-AB12CD"

	payload, err := json.Marshal(QRCodeData{Code: code, Type: "voucher"})
	require.NoError(t, err)

	parsed, err := service.ParseVoucherQR(string(payload))
	require.NoError(t, err)
	assert.Equal(t, code, parsed)
}

func TestQRCodeService_ParseVoucherQR_InvalidPayloads(t *testing.T) {
	service := NewQRCodeService(256, "M")

	tests := []struct {
		name    string
		payload string
	}{
		{"not JSON", "DS-1700000000000-AB12CD"},
		{"wrong type", `{"code":"DS-1700000000000-AB12CD","type":"subscription"}`},
		{"missing prefix", `{"code":"1700000000000-AB12CD","type":"voucher"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseVoucherQR(tt.payload)
			assert.Error(t, err)
		})
	}
}
