package handlers

import (
	"log"
	"net/http"

	"github.com/Mac-Cooper1/Pick6/internal/api/middleware"
	"github.com/Mac-Cooper1/Pick6/internal/service"
	"github.com/Mac-Cooper1/Pick6/internal/ws"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// CORS is handled at the HTTP layer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WebSocketHandler upgrades league members onto the live draft feed.
type WebSocketHandler struct {
	hub          *ws.Hub
	draftService *service.DraftService
}

func NewWebSocketHandler(hub *ws.Hub, draftService *service.DraftService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:          hub,
		draftService: draftService,
	}
}

func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized", "Missing user identity")
		return
	}

	leagueID, err := uuid.Parse(chi.URLParam(r, "leagueId"))
	if err != nil {
		writeValidationError(w, "Invalid league ID")
		return
	}

	// Membership gate before the upgrade; GetDraftState checks it.
	if _, err := h.draftService.GetDraftState(r.Context(), leagueID, userID); err != nil {
		writeServiceError(w, "ws.Handle", err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR [ws.Handle] upgrade failed: %v", err)
		return
	}

	client := ws.NewClient(h.hub, conn, leagueID, userID)
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
