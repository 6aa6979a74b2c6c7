// Package main runs a demo WebSocket client for delivery events.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	base := fmt.Sprintf("http://localhost:%s", port)

	// Create a delivery to watch
	body := []byte(`{"start":"Warehouse","stops":["Ameerpet","Gachibowli"]}`)
	req, _ := http.NewRequest(http.MethodPost, base+"/api/deliveries", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	var created struct {
		Delivery struct {
			ID string `json:"id"`
		} `json:"delivery"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		log.Fatal(err)
	}
	id := created.Delivery.ID
	if id == "" {
		log.Fatal("no delivery id returned")
	}
	log.Printf("Delivery ID: %s", id)

	// Connect WS
	u := url.URL{Scheme: "ws", Host: "localhost:" + port, Path: "/api/deliveries/" + id + "/events"}
	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatal("dial:", err)
	}
	defer func() { _ = c.Close() }()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			var m map[string]any
			if err := c.ReadJSON(&m); err != nil {
				log.Printf("read: %v", err)
				return
			}
			log.Printf("WS <- %v", m)
		}
	}()

	// Trigger an event via status update
	time.Sleep(500 * time.Millisecond)
	upd, _ := http.NewRequest(http.MethodPut, base+"/api/deliveries/"+id, bytes.NewReader([]byte(`{"status":"in_progress"}`)))
	upd.Header.Set("Content-Type", "application/json")
	_, _ = http.DefaultClient.Do(upd)

	// Wait briefly to receive a few messages
	select {
	case <-time.After(2 * time.Second):
	case <-done:
	}
}
