package stream_service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"parkpulse-analytics/pkg/config"
	"parkpulse-analytics/pkg/goroutinepool"
	"parkpulse-analytics/pkg/websocket"
	"parkpulse-analytics/services/operator_service"
)

// DashboardFeed pushes fresh operator dashboard snapshots to websocket
// subscribers. One refresh cycle runs per interval; each subscribed
// tenant gets its own aggregation task on the shared worker pool.
type DashboardFeed struct {
	hub      *websocket.Hub
	svc      *operator_service.AnalyticsService
	interval time.Duration
	stop     chan struct{}
}

type feedFrame struct {
	Type      string      `json:"type"`
	TenantID  string      `json:"tenant_id"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

func NewDashboardFeed(hub *websocket.Hub) *DashboardFeed {
	interval := config.GetConfig().Analytics.FeedInterval
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &DashboardFeed{
		hub:      hub,
		svc:      &operator_service.AnalyticsService{},
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the refresh loop until Stop is called.
func (f *DashboardFeed) Start() {
	ticker := time.NewTicker(f.interval)
	defer ticker.Stop()

	log.Printf("dashboard feed started, interval=%s", f.interval)
	for {
		select {
		case <-ticker.C:
			f.refreshAll()
		case <-f.stop:
			log.Print("dashboard feed stopped")
			return
		}
	}
}

func (f *DashboardFeed) Stop() {
	close(f.stop)
}

func (f *DashboardFeed) refreshAll() {
	for _, tenantID := range f.hub.Topics() {
		id := tenantID
		err := goroutinepool.Submit(func() error {
			return f.pushSnapshot(id)
		})
		if err != nil {
			log.Printf("skip dashboard refresh for tenant %s: %v", id, err)
		}
	}
}

func (f *DashboardFeed) pushSnapshot(tenantID string) error {
	dashboard, err := f.svc.GetOperatorDashboard(tenantID)
	if err != nil {
		return fmt.Errorf("compose dashboard for tenant %s: %w", tenantID, err)
	}

	frame, err := json.Marshal(feedFrame{
		Type:      "dashboard_snapshot",
		TenantID:  tenantID,
		Timestamp: dashboard.AsOfTime,
		Data:      dashboard,
	})
	if err != nil {
		return fmt.Errorf("encode dashboard frame: %w", err)
	}

	f.hub.BroadcastToTopic(tenantID, frame)
	return nil
}
