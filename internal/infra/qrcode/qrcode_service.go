package qrcode

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// DefaultBaseURL is the deep link tablets register for pairing.
const DefaultBaseURL = "screentrack://pair"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a new QR code service instance. Pairing codes encode
// baseURL?material=<id>&slot=<n>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid pairing base URL: %w", err)
	}
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              parsed,
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "L", "LOW":
		return qrcode.Low
	case "Q", "HIGH":
		return qrcode.High
	case "H", "HIGHEST":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePairingQR generates a PNG QR code that binds a tablet to a slot
func (s *qrcodeService) GeneratePairingQR(target service.PairingTarget) ([]byte, error) {
	if strings.TrimSpace(target.MaterialID) == "" {
		return nil, fmt.Errorf("material ID is required")
	}
	if !entity.ValidSlotNumber(target.SlotNumber) {
		return nil, fmt.Errorf("invalid slot number: %d", target.SlotNumber)
	}

	link := *s.baseURL
	query := link.Query()
	query.Set("material", target.MaterialID)
	query.Set("slot", strconv.Itoa(target.SlotNumber))
	link.RawQuery = query.Encode()

	qrCode, err := qrcode.New(link.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePairingQR parses the scanned deep link and returns the slot it names
func (s *qrcodeService) ParsePairingQR(qrData string) (service.PairingTarget, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return service.PairingTarget{}, fmt.Errorf("failed to parse pairing link: %w", err)
	}
	if link.Scheme != s.baseURL.Scheme || link.Host != s.baseURL.Host || link.Path != s.baseURL.Path {
		return service.PairingTarget{}, fmt.Errorf("not a pairing link: %s", qrData)
	}

	query := link.Query()
	materialID := query.Get("material")
	if materialID == "" {
		return service.PairingTarget{}, fmt.Errorf("pairing link has no material")
	}

	slot, err := strconv.Atoi(query.Get("slot"))
	if err != nil || !entity.ValidSlotNumber(slot) {
		return service.PairingTarget{}, fmt.Errorf("pairing link has invalid slot: %q", query.Get("slot"))
	}

	return service.PairingTarget{MaterialID: materialID, SlotNumber: slot}, nil
}
