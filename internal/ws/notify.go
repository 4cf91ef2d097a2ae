package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type RoadmapGeneratedEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	RoadmapID  string `json:"roadmap_id"`
	CareerGoal string `json:"career_goal"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyRoadmapGenerated broadcasts after a roadmap is generated and saved.
// It is a no-op until a hub is installed, so callers never block on it.
func NotifyRoadmapGenerated(userID, roadmapID, careerGoal string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := RoadmapGeneratedEvent{
		Type:       "roadmap_generated",
		UserID:     userID,
		RoadmapID:  roadmapID,
		CareerGoal: careerGoal,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
