package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"routenav/internal/store"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(_ *http.Request) bool { return true }}

// eventsStream upgrades GET /api/deliveries/{id}/events to a websocket and
// forwards broker events for that delivery until the client disconnects.
func (s *Server) eventsStream(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if _, err := s.Store.GetDelivery(r.Context(), id); err == store.ErrNotFound {
		writeProblem(w, http.StatusNotFound, "Delivery not found", "", r.URL.Path)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer func() { _ = conn.Close() }()

	ch := s.Broker.Subscribe(id)
	defer s.Broker.Unsubscribe(id, ch)

	// Reader goroutine only to observe client close.
	done := make(chan struct{})
	go func() {
		defer close(done)
		conn.SetReadLimit(1 << 16)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(15 * time.Second)
	defer ping.Stop()
	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				return
			}
		case <-ping.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}
