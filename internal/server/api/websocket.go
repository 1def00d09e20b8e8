package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	gws "github.com/gorilla/websocket"

	"github.com/levantva/crewcenter/internal/client/models"
	"github.com/levantva/crewcenter/internal/client/poll"
	"github.com/levantva/crewcenter/internal/client/screens"
	"github.com/levantva/crewcenter/internal/client/toast"
	"github.com/levantva/crewcenter/internal/server/websocket"
)

const (
	screenDashboard = "dashboard"
	screenLiveMap   = "livemap"

	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = gws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// screenSession is the screen controller mounted for one connection.
type screenSession interface {
	Mount(ctx context.Context) error
	Unmount()
	Refresh(ctx context.Context)
}

func toastMessage(e toast.Event) (websocket.Message, error) {
	t := websocket.TypeToastAdded
	if e.Type == toast.Removed {
		t = websocket.TypeToastRemoved
	}
	return websocket.NewMessage(t, e.Toast)
}

// BroadcastToasts forwards every event of the portal-wide channel to all
// WebSocket clients. It returns the unsubscribe func.
func BroadcastToasts(ch *toast.Channel, hub *websocket.Hub) func() {
	return ch.Subscribe(func(e toast.Event) {
		msg, err := toastMessage(e)
		if err != nil {
			return
		}
		_ = hub.BroadcastMessage(msg)
	})
}

// forwardToasts sends the events of a connection's own channel to that
// connection only.
func forwardToasts(ch *toast.Channel, client *websocket.Client) func() {
	return ch.Subscribe(func(e toast.Event) {
		msg, err := toastMessage(e)
		if err != nil {
			return
		}
		client.EnqueueMessage(msg)
	})
}

// WebSocket upgrades the connection and mounts the screen named by the
// "screen" query parameter (dashboard by default) for as long as the
// socket stays open.
func (h *Handler) WebSocket(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("screen")
	if name == "" {
		name = screenDashboard
	}
	if name != screenDashboard && name != screenLiveMap {
		WriteError(w, http.StatusBadRequest, ErrValidation, "screen must be dashboard or livemap")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error(r.Context(), "websocket upgrade failed", "error", err)
		return
	}

	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	defer cancel()

	client := websocket.NewClient()
	h.hub.Register(client)
	go writePump(conn, client)

	// screen toasts belong to this connection
	own := toast.New()
	stopToasts := forwardToasts(own, client)
	defer func() {
		stopToasts()
		own.Clear()
	}()
	deps := h.deps
	deps.Toasts = own

	var (
		sess    screenSession
		liveMap *screens.LiveMap
	)
	switch name {
	case screenDashboard:
		d := screens.NewDashboard(deps, h.dashboardInterval)
		d.OnUpdate(func(s poll.Snapshot[screens.DashboardData]) {
			client.EnqueueMessage(snapshotMessage(name, s.Seq, s.State, s.UpdatedAt, s.Err, s.Data, ""))
		})
		sess = d
	case screenLiveMap:
		liveMap = screens.NewLiveMap(deps, h.liveMapInterval)
		liveMap.OnUpdate(func(s poll.Snapshot[[]models.Flight]) {
			client.EnqueueMessage(liveMapMessage(liveMap, s))
		})
		sess = liveMap
	}

	if err := sess.Mount(ctx); err != nil {
		h.log.Error(ctx, "mounting screen failed", "screen", name, "error", err)
		h.hub.Unregister(client)
		return
	}
	defer sess.Unmount()
	h.log.Debug(ctx, "screen mounted", "screen", name)

	readPump(conn, client, h.hub, func(m websocket.Message) {
		h.handleClientMessage(ctx, client, sess, liveMap, m)
	})
}

func snapshotMessage(screen string, seq uint64, state poll.State, updated time.Time, err error, data any, selected string) websocket.Message {
	p := websocket.SnapshotPayload{
		Screen:    screen,
		Seq:       seq,
		State:     string(state),
		UpdatedAt: updated,
		Data:      data,
		Selected:  selected,
	}
	if err != nil {
		p.Error = err.Error()
	}
	msg, _ := websocket.NewMessage(websocket.TypeScreenSnapshot, p)
	return msg
}

func liveMapMessage(m *screens.LiveMap, s poll.Snapshot[[]models.Flight]) websocket.Message {
	selected := ""
	if f, ok := m.Selected(); ok {
		selected = f.ID
	}
	return snapshotMessage(screenLiveMap, s.Seq, s.State, s.UpdatedAt, s.Err, s.Data, selected)
}

func errorMessage(code, message string, original websocket.MessageType) websocket.Message {
	msg, _ := websocket.NewMessage(websocket.TypeError, websocket.ErrorPayload{
		Code:         code,
		Message:      message,
		OriginalType: string(original),
	})
	return msg
}

func (h *Handler) handleClientMessage(ctx context.Context, client *websocket.Client, sess screenSession, liveMap *screens.LiveMap, m websocket.Message) {
	switch m.Type {
	case websocket.TypePing:
		pong, _ := websocket.NewMessage(websocket.TypePong, nil)
		client.EnqueueMessage(pong)

	case websocket.TypeRefresh:
		sess.Refresh(ctx)

	case websocket.TypeSelect:
		if liveMap == nil {
			client.EnqueueMessage(errorMessage(ErrBadRequest, "select is only available on the live map", m.Type))
			return
		}
		var p websocket.SelectPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			client.EnqueueMessage(errorMessage(ErrBadRequest, "invalid select payload", m.Type))
			return
		}
		if p.FlightID == "" {
			liveMap.Deselect()
		} else if _, err := liveMap.Select(p.FlightID); err != nil {
			client.EnqueueMessage(errorMessage(ErrNotFound, err.Error(), m.Type))
			return
		}
		client.EnqueueMessage(liveMapMessage(liveMap, liveMap.Snapshot()))

	default:
		client.EnqueueMessage(errorMessage(ErrBadRequest, "unknown message type", m.Type))
	}
}

// writePump drains the client queue into the connection and pings it.
func writePump(conn *gws.Conn, client *websocket.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(gws.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(gws.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(gws.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads client commands until the connection closes.
func readPump(conn *gws.Conn, client *websocket.Client, hub *websocket.Hub, handle func(websocket.Message)) {
	defer func() {
		hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(65536)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var m websocket.Message
		if err := json.Unmarshal(raw, &m); err != nil {
			client.EnqueueMessage(errorMessage(ErrBadRequest, "invalid message", ""))
			continue
		}
		handle(m)
	}
}
