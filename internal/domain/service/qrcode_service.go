package service

// QRCodeService renders shipment labels as QR codes.
type QRCodeService interface {
	// GenerateTrackingQR returns a PNG encoding the public tracking URL of trackingNumber.
	GenerateTrackingQR(trackingNumber string) ([]byte, error)

	// ParseTrackingQR extracts the tracking number from decoded QR content.
	ParseTrackingQR(qrData string) (string, error)
}
