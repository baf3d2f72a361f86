// Package live carries UI events from the browser to a per-connection view
// state over a websocket and answers with the re-rendered fragments.
package live

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ziadkadry99/bpguide/internal/guide"
	"github.com/ziadkadry99/bpguide/internal/site"
	"github.com/ziadkadry99/bpguide/internal/view"
)

// maxMessageSize bounds a single client event.
const maxMessageSize = 4096

// Hub owns the open live sessions.
type Hub struct {
	reg       *guide.Registry
	renderer  *site.Renderer
	logger    *zap.Logger
	threshold int
	upgrader  websocket.Upgrader

	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

// NewHub creates a Hub. With allowAllOrigins unset, only same-origin
// upgrades are accepted.
func NewHub(reg *guide.Registry, renderer *site.Renderer, logger *zap.Logger, threshold int, allowAllOrigins bool) *Hub {
	h := &Hub{
		reg:       reg,
		renderer:  renderer,
		logger:    logger.Named("live"),
		threshold: threshold,
		conns:     make(map[string]*websocket.Conn),
	}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// RegisterRoutes mounts the websocket endpoint onto the given router.
func (h *Hub) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

// Count returns the number of open sessions.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// CloseAll closes every open session. Hijacked connections are not closed by
// http.Server.Shutdown, so the server calls this on the way out.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for id, conn := range h.conns {
		_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		conn.Close()
		delete(h.conns, id)
	}
}

func (h *Hub) add(id string, conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[id] = conn
	h.mu.Unlock()
}

func (h *Hub) remove(id string) {
	h.mu.Lock()
	delete(h.conns, id)
	h.mu.Unlock()
}

// eventRequest is the incoming WebSocket message format.
type eventRequest struct {
	Type      string `json:"type"` // select, toggle_sidebar, close_sidebar, scroll, toggle_accordion
	Section   string `json:"section,omitempty"`
	Offset    int    `json:"offset,omitempty"`
	Accordion *int   `json:"accordion,omitempty"`
}

// eventResponse is the outgoing WebSocket message format. Fragments are only
// sent when the event changed them.
type eventResponse struct {
	Type      string         `json:"type"` // render or error
	SessionID string         `json:"session_id"`
	State     *view.Snapshot `json:"state,omitempty"`
	Sidebar   string         `json:"sidebar,omitempty"`
	Content   string         `json:"content,omitempty"`
	Title     string         `json:"title,omitempty"`
	Error     string         `json:"error,omitempty"`
}

func (h *Hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	s := &session{
		id:    uuid.NewString(),
		conn:  conn,
		state: view.New(h.reg, view.WithScrollThreshold(h.threshold), view.WithSection(r.URL.Query().Get("section"))),
		hub:   h,
	}
	h.add(s.id, conn)
	defer h.remove(s.id)

	log := h.logger.With(zap.String("session", s.id))
	log.Debug("session opened", zap.String("section", s.state.ActiveSectionID()))

	s.send(s.render(false, false))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			log.Debug("session closed")
			return
		}

		var req eventRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError("invalid message format")
			continue
		}
		s.handle(req)
	}
}

// session is one connection and the view state it owns. Only the read loop
// touches it.
type session struct {
	id    string
	conn  *websocket.Conn
	state *view.State
	hub   *Hub
}

func (s *session) handle(req eventRequest) {
	switch req.Type {
	case "select":
		if err := s.state.SelectSection(req.Section); err != nil {
			s.sendError(err.Error())
			return
		}
		s.send(s.render(true, true))
	case "toggle_sidebar":
		s.state.ToggleSidebar()
		s.send(s.render(false, false))
	case "close_sidebar":
		s.state.CloseSidebar()
		s.send(s.render(false, false))
	case "scroll":
		s.state.ObserveScroll(req.Offset)
		s.send(s.render(false, false))
	case "toggle_accordion":
		if req.Accordion == nil {
			s.sendError("accordion is required")
			return
		}
		if _, err := s.state.ToggleAccordion(*req.Accordion); err != nil {
			s.sendError(err.Error())
			return
		}
		s.send(s.render(false, true))
	default:
		s.hub.logger.Debug("unknown event", zap.String("session", s.id), zap.String("type", req.Type))
		s.sendError("unknown message type: " + req.Type)
	}
}

// render builds a render message, including the sidebar and content
// fragments when requested.
func (s *session) render(sidebar, content bool) eventResponse {
	snap := s.state.Snapshot()
	resp := eventResponse{
		Type:      "render",
		SessionID: s.id,
		State:     &snap,
		Title:     s.state.Content().Title,
	}
	if sidebar {
		html, err := s.hub.renderer.Sidebar(s.state)
		if err != nil {
			return s.errorResponse("rendering sidebar: " + err.Error())
		}
		resp.Sidebar = string(html)
	}
	if content {
		html, err := s.hub.renderer.Content(s.state)
		if err != nil {
			return s.errorResponse("rendering content: " + err.Error())
		}
		resp.Content = string(html)
	}
	return resp
}

func (s *session) errorResponse(message string) eventResponse {
	return eventResponse{Type: "error", SessionID: s.id, Error: message}
}

func (s *session) send(resp eventResponse) {
	if err := s.conn.WriteJSON(resp); err != nil {
		s.hub.logger.Debug("websocket write", zap.String("session", s.id), zap.Error(err))
	}
}

func (s *session) sendError(message string) {
	s.send(s.errorResponse(message))
}
