// Package ws is the presence gateway: one WebSocket per device, ping/pong liveness, and
// roster broadcasts to dashboard observers.
package ws

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"screentrack/config"
	"screentrack/internal/delivery/api/response"
	"screentrack/internal/delivery/api/validator"
	deliverycontext "screentrack/internal/delivery/context"
	"screentrack/internal/domain/constants"
	"screentrack/internal/domain/entity"
	"screentrack/internal/domain/service"
	"screentrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/moby/locker"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultPingInterval    = 30 * time.Second
	defaultPongTimeout     = 90 * time.Second
	defaultMaxPingFailures = 2
	defaultWriteTimeout    = 10 * time.Second
	defaultSendBuffer      = 32

	presenceSource = "websocket"
)

// GatewayParams holds dependencies for Gateway, injected by Fx.
type GatewayParams struct {
	fx.In

	Lc        fx.Lifecycle
	Config    *config.Config
	Tracker   usecase.SessionTracker
	Status    usecase.StatusUsecase
	Publisher service.EventPublisher
	Clock     clockwork.Clock
	Logger    *slog.Logger
}

// Gateway owns every live device and observer connection.
type Gateway struct {
	tracker   usecase.SessionTracker
	status    usecase.StatusUsecase
	publisher service.EventPublisher
	clock     clockwork.Clock
	logger    *slog.Logger
	validator *validator.CustomValidator
	upgrader  websocket.Upgrader

	pingInterval    time.Duration
	pongTimeout     time.Duration
	maxPingFailures int
	writeTimeout    time.Duration
	sendBuffer      int

	mu          sync.Mutex
	devices     map[string]*conn
	generations map[string]uint64
	observers   map[*conn]struct{}
	closing     bool
	handlers    sync.WaitGroup

	// deviceLocks orders telemetry side effects per device.
	deviceLocks *locker.Locker
}

// NewGateway builds the gateway and closes every connection on shutdown.
func NewGateway(params GatewayParams) *Gateway {
	g := newGateway(params.Config.Presence, params.Tracker, params.Status, params.Publisher, params.Clock, params.Logger)

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: g.Shutdown})
	}

	return g
}

func newGateway(cfg *config.PresenceConfig, tracker usecase.SessionTracker, status usecase.StatusUsecase,
	publisher service.EventPublisher, clk clockwork.Clock, logger *slog.Logger,
) *Gateway {
	g := &Gateway{
		tracker:         tracker,
		status:          status,
		publisher:       publisher,
		clock:           clk,
		logger:          logger,
		validator:       validator.New(),
		pingInterval:    defaultPingInterval,
		pongTimeout:     defaultPongTimeout,
		maxPingFailures: defaultMaxPingFailures,
		writeTimeout:    defaultWriteTimeout,
		sendBuffer:      defaultSendBuffer,
		devices:         make(map[string]*conn),
		generations:     make(map[string]uint64),
		observers:       make(map[*conn]struct{}),
		deviceLocks:     locker.New(),
	}

	var allowed []string
	if cfg != nil {
		if cfg.PingInterval > 0 {
			g.pingInterval = cfg.PingInterval
		}
		if cfg.PongTimeout > 0 {
			g.pongTimeout = cfg.PongTimeout
		}
		if cfg.MaxPingFailures > 0 {
			g.maxPingFailures = cfg.MaxPingFailures
		}
		if cfg.WriteTimeout > 0 {
			g.writeTimeout = cfg.WriteTimeout
		}
		if cfg.SendBuffer > 0 {
			g.sendBuffer = cfg.SendBuffer
		}
		allowed = cfg.AllowedOrigins
	}

	g.upgrader = websocket.Upgrader{
		HandshakeTimeout: g.writeTimeout,
		ReadBufferSize:   4096,
		WriteBufferSize:  4096,
		CheckOrigin:      originChecker(allowed),
	}

	return g
}

func originChecker(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}

	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}

		return slices.ContainsFunc(allowed, func(candidate string) bool {
			return strings.EqualFold(candidate, origin)
		})
	}
}

// HandleDevice upgrades a tablet connection. The device id comes from the deviceId query
// parameter or the X-Device-Id header; without one the request is refused before upgrade.
func (g *Gateway) HandleDevice(c echo.Context) error {
	req := c.Request()
	deviceID := firstNonEmpty(c.QueryParam("deviceId"), req.Header.Get(constants.HeaderDeviceID))
	materialID := firstNonEmpty(c.QueryParam("materialId"), req.Header.Get(constants.HeaderMaterialID))
	if deviceID == "" {
		return response.BadRequest(c, "MISSING_DEVICE_ID", "deviceId is required")
	}

	if !g.acceptHandler() {
		return response.ServiceUnavailable(c, "SHUTTING_DOWN", "Gateway is shutting down")
	}
	defer g.handlers.Done()

	socket, err := g.upgrader.Upgrade(c.Response(), req, nil)
	if err != nil {
		// The upgrader has already answered the request.
		g.log(req.Context()).Warn("[Gateway] Upgrade failed", slog.String("deviceId", deviceID), slog.Any("error", err))

		return nil
	}

	ctx := context.WithoutCancel(req.Context())
	cn := newConn(socket, deviceID, materialID, g.clock.Now(), g.sendBuffer)

	g.connect(ctx, cn)
	go g.writePump(ctx, cn)
	g.readPump(ctx, cn)
	g.disconnect(ctx, cn)

	return nil
}

// HandleObserver upgrades a dashboard connection that receives roster broadcasts.
func (g *Gateway) HandleObserver(c echo.Context) error {
	if !g.acceptHandler() {
		return response.ServiceUnavailable(c, "SHUTTING_DOWN", "Gateway is shutting down")
	}
	defer g.handlers.Done()

	req := c.Request()
	socket, err := g.upgrader.Upgrade(c.Response(), req, nil)
	if err != nil {
		g.log(req.Context()).Warn("[Gateway] Observer upgrade failed", slog.Any("error", err))

		return nil
	}

	ctx := context.WithoutCancel(req.Context())
	cn := newConn(socket, "", "", g.clock.Now(), g.sendBuffer)

	g.mu.Lock()
	g.observers[cn] = struct{}{}
	g.mu.Unlock()

	cn.enqueue(mustMarshal(connectedFrame{Type: FrameConnected, ConnectedAt: cn.connectedAt}))
	cn.enqueue(mustMarshal(deviceListFrame{Type: FrameDeviceList, Devices: g.Roster()}))

	go g.writePump(ctx, cn)
	g.readPump(ctx, cn)

	g.mu.Lock()
	delete(g.observers, cn)
	g.mu.Unlock()
	cn.close(websocket.CloseNormalClosure, "")

	return nil
}

func (g *Gateway) acceptHandler() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closing {
		return false
	}
	g.handlers.Add(1)

	return true
}

// connect registers cn, replacing any live connection for the same device. The roster and
// the arbiter change together under g.mu; telemetry, the roster broadcast, and the presence
// event follow in that order under the device lock.
func (g *Gateway) connect(ctx context.Context, cn *conn) {
	now := g.clock.Now()

	g.mu.Lock()
	previous := g.devices[cn.deviceID]
	g.generations[cn.deviceID]++
	cn.generation = g.generations[cn.deviceID]
	g.devices[cn.deviceID] = cn
	g.status.SetWebSocketStatus(cn.deviceID, true, now)
	g.mu.Unlock()

	if previous != nil {
		g.log(ctx).Info("[Gateway] Replacing existing connection", slog.String("deviceId", cn.deviceID))
		previous.close(websocket.ClosePolicyViolation, "replaced by a newer connection")
	}

	g.deviceLocks.Lock(cn.deviceID)
	defer g.unlockDevice(cn.deviceID)

	if err := g.tracker.HandleConnect(ctx, cn.deviceID, cn.materialID); err != nil {
		g.log(ctx).Warn("[Gateway] Telemetry connect failed",
			slog.String("deviceId", cn.deviceID),
			slog.Any("error", err),
		)
	}

	cn.enqueue(mustMarshal(connectedFrame{Type: FrameConnected, DeviceID: cn.deviceID, ConnectedAt: cn.connectedAt}))
	g.broadcastPresence(cn, true, now)
	g.publishPresence(ctx, cn, true, now)

	g.log(ctx).Info("[Gateway] Device connected",
		slog.String("deviceId", cn.deviceID),
		slog.String("materialId", cn.materialID),
	)
}

// disconnect runs once per connection after its read loop ends. A connection that was
// replaced leaves no trace: the newer one already owns the device. One that a reconnect
// overtook before its side effects ran skips them, so telemetry never sees a stale close.
func (g *Gateway) disconnect(ctx context.Context, cn *conn) {
	cn.close(websocket.CloseNormalClosure, "")
	now := g.clock.Now()

	g.mu.Lock()
	current := g.devices[cn.deviceID] == cn
	if current {
		delete(g.devices, cn.deviceID)
		g.status.SetWebSocketStatus(cn.deviceID, false, now)
	}
	g.mu.Unlock()

	if !current {
		return
	}

	g.deviceLocks.Lock(cn.deviceID)
	defer g.unlockDevice(cn.deviceID)

	if g.superseded(cn) {
		g.log(ctx).Debug("[Gateway] Skipping disconnect overtaken by a reconnect", slog.String("deviceId", cn.deviceID))

		return
	}

	if err := g.tracker.HandleDisconnect(ctx, cn.deviceID); err != nil {
		g.log(ctx).Warn("[Gateway] Telemetry disconnect failed",
			slog.String("deviceId", cn.deviceID),
			slog.Any("error", err),
		)
	}

	g.broadcastPresence(cn, false, now)
	g.publishPresence(ctx, cn, false, now)

	g.log(ctx).Info("[Gateway] Device disconnected", slog.String("deviceId", cn.deviceID))
}

// superseded reports whether a newer connection for cn's device has registered since cn.
func (g *Gateway) superseded(cn *conn) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generations[cn.deviceID] != cn.generation
}

func (g *Gateway) unlockDevice(deviceID string) {
	if err := g.deviceLocks.Unlock(deviceID); err != nil {
		g.logger.Error("[Gateway] Device lock released twice", slog.String("deviceId", deviceID), slog.Any("error", err))
	}
}

func (g *Gateway) readPump(ctx context.Context, cn *conn) {
	cn.ws.SetReadLimit(maxMessageSize)
	// Liveness is tracked by pongs, so the HTTP server's read deadline must not carry over.
	_ = cn.ws.SetReadDeadline(time.Time{})
	cn.ws.SetPongHandler(func(string) error {
		cn.touch(g.clock.Now())

		return nil
	})

	for {
		_, raw, err := cn.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && !cn.isClosed() {
				g.log(ctx).Debug("[Gateway] Read failed", slog.String("deviceId", cn.deviceID), slog.Any("error", err))
			}

			return
		}
		g.handleFrame(ctx, cn, raw)
	}
}

func (g *Gateway) handleFrame(ctx context.Context, cn *conn, raw []byte) {
	frame, err := decodeFrame(raw)
	if err != nil {
		g.log(ctx).Warn("[Gateway] Ignoring malformed frame", slog.String("deviceId", cn.deviceID), slog.Any("error", err))
		cn.enqueue(mustMarshal(errorFrame{Type: FrameError, Message: "malformed frame"}))

		return
	}

	switch frame.Type {
	case FramePing:
		now := g.clock.Now()
		cn.touch(now)
		cn.enqueue(mustMarshal(pongFrame{Type: FramePong, Timestamp: now}))

	case FrameLocation:
		if cn.isObserver() {
			cn.enqueue(mustMarshal(errorFrame{Type: FrameError, Message: "observers cannot report locations"}))

			return
		}
		cn.touch(g.clock.Now())
		g.handleLocation(ctx, cn, frame)

	default:
		g.log(ctx).Warn("[Gateway] Unknown frame type", slog.String("deviceId", cn.deviceID), slog.String("type", frame.Type))
		cn.enqueue(mustMarshal(errorFrame{Type: FrameError, Message: "unknown frame type " + frame.Type}))
	}
}

func (g *Gateway) handleLocation(ctx context.Context, cn *conn, frame inboundFrame) {
	input, err := frame.location()
	if err == nil {
		err = g.validator.Validate(input)
	}
	if err != nil {
		cn.enqueue(mustMarshal(errorFrame{Type: FrameError, Message: err.Error()}))

		return
	}

	result, err := g.tracker.UpdateLocation(ctx, cn.deviceID, input)
	if err != nil {
		g.log(ctx).Warn("[Gateway] Location update failed", slog.String("deviceId", cn.deviceID), slog.Any("error", err))
		cn.enqueue(mustMarshal(errorFrame{Type: FrameError, Message: "location update failed"}))

		return
	}

	cn.enqueue(mustMarshal(locationAckFrame{Type: FrameLocationAck, Data: result}))
}

// writePump drains the send queue and runs the liveness check on every ping tick.
func (g *Gateway) writePump(ctx context.Context, cn *conn) {
	ticker := g.clock.NewTicker(g.pingInterval)
	defer ticker.Stop()

	budget := pingBudget{limit: g.maxPingFailures}
	for {
		select {
		case <-cn.done:
			return

		case payload := <-cn.send:
			// Socket deadlines are enforced by the OS against wall-clock time.
			_ = cn.ws.SetWriteDeadline(time.Now().Add(g.writeTimeout))
			if err := cn.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				g.log(ctx).Debug("[Gateway] Write failed", slog.String("deviceId", cn.deviceID), slog.Any("error", err))
				cn.close(websocket.CloseInternalServerErr, "write failed")

				return
			}

		case <-ticker.Chan():
			if silent := g.clock.Now().Sub(cn.lastPongAt()); silent > g.pongTimeout {
				g.log(ctx).Info("[Gateway] Connection timed out",
					slog.String("deviceId", cn.deviceID),
					slog.Duration("silentFor", silent),
				)
				cn.close(websocket.CloseGoingAway, "pong timeout")

				return
			}

			err := cn.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(g.writeTimeout))
			exhausted := budget.record(err)
			if err != nil {
				g.log(ctx).Debug("[Gateway] Ping failed",
					slog.String("deviceId", cn.deviceID),
					slog.Int("failures", budget.failures),
					slog.Any("error", err),
				)
			}
			if exhausted {
				cn.close(websocket.CloseGoingAway, "ping failed")

				return
			}
		}
	}
}

// Roster returns the live device connections ordered by device id.
func (g *Gateway) Roster() []entity.DeviceConnection {
	g.mu.Lock()
	conns := make([]*conn, 0, len(g.devices))
	for _, cn := range g.devices {
		conns = append(conns, cn)
	}
	g.mu.Unlock()

	roster := make([]entity.DeviceConnection, 0, len(conns))
	for _, cn := range conns {
		roster = append(roster, cn.snapshot())
	}
	slices.SortFunc(roster, func(a, b entity.DeviceConnection) int {
		return strings.Compare(a.DeviceID, b.DeviceID)
	})

	return roster
}

func (g *Gateway) broadcastPresence(cn *conn, online bool, at time.Time) {
	list := mustMarshal(deviceListFrame{Type: FrameDeviceList, Devices: g.Roster()})
	update := mustMarshal(deviceUpdateFrame{
		Type: FrameDeviceUpdate,
		Device: DeviceUpdate{
			DeviceID:   cn.deviceID,
			MaterialID: cn.materialID,
			IsOnline:   online,
			Status:     g.status.GetStatus(cn.deviceID),
			At:         at,
		},
	})

	g.mu.Lock()
	observers := make([]*conn, 0, len(g.observers))
	for observer := range g.observers {
		observers = append(observers, observer)
	}
	g.mu.Unlock()

	for _, observer := range observers {
		observer.enqueue(list)
		observer.enqueue(update)
	}
}

func (g *Gateway) publishPresence(ctx context.Context, cn *conn, online bool, at time.Time) {
	if g.publisher == nil {
		return
	}

	event := &service.PresenceEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		DeviceID:   cn.deviceID,
		MaterialID: cn.materialID,
		IsOnline:   online,
		Source:     presenceSource,
		OccurredAt: at,
	}
	if err := g.publisher.PublishPresenceEvent(ctx, event); err != nil {
		g.log(ctx).Warn("[Gateway] Failed to publish presence event",
			slog.String("deviceId", cn.deviceID),
			slog.Any("error", err),
		)
	}
}

// Shutdown closes every connection and waits for their handlers to finish.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closing = true
	conns := make([]*conn, 0, len(g.devices)+len(g.observers))
	for _, cn := range g.devices {
		conns = append(conns, cn)
	}
	for cn := range g.observers {
		conns = append(conns, cn)
	}
	g.mu.Unlock()

	g.logger.Info("[Gateway] Closing connections", slog.Int("count", len(conns)))
	for _, cn := range conns {
		cn.close(websocket.CloseGoingAway, "server shutting down")
	}

	finished := make(chan struct{})
	go func() {
		g.handlers.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "wait for gateway handlers")
	}
}

func (g *Gateway) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
