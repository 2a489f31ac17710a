package qrcode

import (
	"testing"

	"boxtrack/config"

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
				Size:                 tt.size,
				ErrorCorrectionLevel: tt.errorCorrectionLevel,
			}})
			assert.NotNil(t, svc)
		})
	}
}

func TestQRCodeService_GenerateTrackingQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://track.example.com/t/")

	qrBytes, err := svc.GenerateTrackingQR("BOX-LZ1K2M3-ABC123")
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
	assert.Equal(t, "https://track.example.com/t", svc.baseURL)
}

func TestQRCodeService_GenerateTrackingQR_RejectsForeignNumbers(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	_, err := svc.GenerateTrackingQR("XYZ-1")
	assert.Error(t, err)
}

func TestQRCodeService_ParseTrackingQR(t *testing.T) {
	svc := newQRCodeService(256, "M", "https://track.example.com")

	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"tracking URL", "https://track.example.com/BOX-LZ1K2M3-ABC123", "BOX-LZ1K2M3-ABC123", false},
		{"trailing slash", "https://track.example.com/BOX-LZ1K2M3-ABC123/", "BOX-LZ1K2M3-ABC123", false},
		{"bare number", " BOX-LZ1K2M3-ABC123 ", "BOX-LZ1K2M3-ABC123", false},
		{"prefix only", "BOX-", "", true},
		{"foreign content", "hello world", "", true},
		{"foreign URL", "https://example.com/other", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseTrackingQR(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
