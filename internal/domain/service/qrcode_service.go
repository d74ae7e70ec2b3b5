package service

// PairingTarget identifies the slot a tablet should bind to after scanning a pairing code.
type PairingTarget struct {
	MaterialID string
	SlotNumber int
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePairingQR generates a PNG QR code that binds a tablet to a slot
	GeneratePairingQR(target PairingTarget) ([]byte, error)

	// ParsePairingQR parses QR code data and returns the slot it names
	ParsePairingQR(qrData string) (PairingTarget, error)
}
