package handlers

import (
	"log"
	"net/http"

	"github.com/Dosada05/league-signups/live"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// В продакшене здесь должна быть проверка Origin.
		return true
	},
}

type WebSocketHandler struct {
	hub *live.Hub
}

func NewWebSocketHandler(hub *live.Hub) *WebSocketHandler {
	return &WebSocketHandler{hub: hub}
}

// ServeWs joins a client to one signup's update room. The client receives
// ROSTER_UPDATED messages whenever a slot of any game in the signup changes.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	signupID, err := getUUIDFromURL(r, "signupID")
	if err != nil {
		http.Error(w, "Invalid signupID", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection for signup %s: %v", signupID, err)
		return
	}

	client := &live.Client{
		Hub:  h.hub,
		Conn: conn,
		Send: make(chan []byte, 256),
		Room: live.SignupRoom(signupID),
	}
	client.Hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	log.Printf("Client registered and pumps started for room %s.", client.Room)
}
