package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"boxtrack/config"
	"boxtrack/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance from the qrCode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := config.QRCodeConfig{}
	if cfg.QRCode != nil {
		qrCfg = *cfg.QRCode
	}

	return newQRCodeService(qrCfg.Size, qrCfg.ErrorCorrectionLevel, qrCfg.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
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

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateTrackingQR renders the public tracking URL of a shipment as a PNG.
// Without a base URL the code holds the bare tracking number.
func (s *qrcodeService) GenerateTrackingQR(trackingNumber string) ([]byte, error) {
	if !strings.HasPrefix(trackingNumber, service.TrackingNumberPrefix) {
		return nil, fmt.Errorf("invalid tracking number: %q", trackingNumber)
	}

	content := trackingNumber
	if s.baseURL != "" {
		content = s.baseURL + "/" + url.PathEscape(trackingNumber)
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseTrackingQR accepts either a tracking URL or a bare tracking number.
func (s *qrcodeService) ParseTrackingQR(qrData string) (string, error) {
	candidate := strings.TrimSpace(qrData)
	if strings.Contains(candidate, "://") {
		parsed, err := url.Parse(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to parse tracking URL: %w", err)
		}
		path := strings.TrimRight(parsed.Path, "/")
		candidate = path[strings.LastIndex(path, "/")+1:]
	}

	if !strings.HasPrefix(candidate, service.TrackingNumberPrefix) || len(candidate) == len(service.TrackingNumberPrefix) {
		return "", fmt.Errorf("invalid QR code content: %q", qrData)
	}

	return candidate, nil
}
