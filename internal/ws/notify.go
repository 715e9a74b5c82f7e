package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type CompanyIntelUpdatedEvent struct {
	Type        string `json:"type"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName,omitempty"`
	Timestamp   string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyCompanyIntelUpdated announces a refreshed culture text so open
// match views can re-request culture assessments.
func NotifyCompanyIntelUpdated(companyID uuid.UUID, companyName string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}
	if companyID == uuid.Nil {
		return
	}

	evt := CompanyIntelUpdatedEvent{
		Type:        "company_intel_updated",
		CompanyID:   companyID.String(),
		CompanyName: companyName,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
