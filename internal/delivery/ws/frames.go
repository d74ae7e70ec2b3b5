package ws

import (
	"encoding/json"
	"time"

	"screentrack/internal/domain/entity"
	"screentrack/internal/usecase"

	"github.com/pkg/errors"
)

// Frame types exchanged over the socket.
const (
	FramePing         = "ping"
	FramePong         = "pong"
	FrameLocation     = "location"
	FrameLocationAck  = "locationAck"
	FrameConnected    = "connected"
	FrameDeviceList   = "deviceList"
	FrameDeviceUpdate = "deviceUpdate"
	FrameError        = "error"
)

var errMissingFrameType = errors.New("frame has no type")

// inboundFrame is the envelope every client message is decoded into once.
type inboundFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func decodeFrame(raw []byte) (inboundFrame, error) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		return inboundFrame{}, errors.Wrap(err, "decode frame")
	}
	if frame.Type == "" {
		return inboundFrame{}, errMissingFrameType
	}

	return frame, nil
}

func (f inboundFrame) location() (*usecase.LocationInput, error) {
	if len(f.Data) == 0 {
		return nil, errors.New("location frame has no data")
	}

	var input usecase.LocationInput
	if err := json.Unmarshal(f.Data, &input); err != nil {
		return nil, errors.Wrap(err, "decode location")
	}

	return &input, nil
}

type pongFrame struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

type connectedFrame struct {
	Type        string    `json:"type"`
	DeviceID    string    `json:"deviceId,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
}

type locationAckFrame struct {
	Type string                  `json:"type"`
	Data *usecase.LocationResult `json:"data"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type deviceListFrame struct {
	Type    string                    `json:"type"`
	Devices []entity.DeviceConnection `json:"devices"`
}

// DeviceUpdate describes one device's presence change.
type DeviceUpdate struct {
	DeviceID   string               `json:"deviceId"`
	MaterialID string               `json:"materialId,omitempty"`
	IsOnline   bool                 `json:"isOnline"`
	Status     entity.StatusVerdict `json:"status"`
	At         time.Time            `json:"at"`
}

type deviceUpdateFrame struct {
	Type   string       `json:"type"`
	Device DeviceUpdate `json:"device"`
}

func mustMarshal(v any) []byte {
	payload, err := json.Marshal(v)
	if err != nil {
		// Frames are plain structs; a failure here is a programming error.
		panic(errors.Wrap(err, "marshal frame"))
	}

	return payload
}
