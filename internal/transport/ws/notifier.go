package ws

import (
	"log"

	"github.com/google/uuid"
	"github.com/whisprhq/whispr/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(userID uuid.UUID, notification *domain.Notification) {
	evt, err := NewEvent(EventTypeNotification, NotificationPayload{Notification: *notification})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.Publish(userID, evt)
}
