package operator_service

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"parkpulse-analytics/db"
	"parkpulse-analytics/inout"
	"parkpulse-analytics/model/operator_model"
	"parkpulse-analytics/utils"
)

// GetAgentActivitySummary ranks the tenant's sales agents by ticket
// volume for the current day.
func (s *AnalyticsService) GetAgentActivitySummary(tenantID string) (inout.AgentActivitySummary, error) {
	if tenantID == DemoTenantID {
		return demoAgentActivity(), nil
	}
	return s.getAgentActivitySummary(tenantID, time.Now())
}

func (s *AnalyticsService) getAgentActivitySummary(tenantID string, now time.Time) (inout.AgentActivitySummary, error) {
	startOfDay := utils.StartOfDay(now)

	var tickets []operator_model.Ticket
	err := db.Dao.Model(&operator_model.Ticket{}).
		Where("tenant_id = ?", tenantID).
		Where("status <> ?", operator_model.TicketStatusCancelled).
		Where("sold_at BETWEEN ? AND ?", startOfDay, now).
		Order("sold_at ASC").
		Find(&tickets).Error
	if err != nil {
		return inout.AgentActivitySummary{}, fmt.Errorf("query agent tickets: %w", err)
	}

	summary := rankAgents(tickets)
	summary.Date = utils.FormatDate(now)
	return summary, nil
}

// rankAgents groups today's tickets by the selling agent. The ranking is
// by ticket count, not revenue: the board rewards volume. Ties keep the
// order agents were first seen in.
func rankAgents(tickets []operator_model.Ticket) inout.AgentActivitySummary {
	summary := inout.AgentActivitySummary{
		TotalRevenueToday: decimal.Zero,
		AgentPerformance:  []inout.AgentActivityItem{},
	}

	index := make(map[string]int)
	for _, ticket := range tickets {
		summary.TotalTicketsToday++
		summary.TotalRevenueToday = summary.TotalRevenueToday.Add(ticket.Amount)

		pos, ok := index[ticket.SoldByID]
		if !ok {
			pos = len(summary.AgentPerformance)
			index[ticket.SoldByID] = pos
			summary.AgentPerformance = append(summary.AgentPerformance, inout.AgentActivityItem{
				AgentID:   ticket.SoldByID,
				AgentName: ticket.SoldByName,
				Revenue:   decimal.Zero,
			})
		}

		agent := &summary.AgentPerformance[pos]
		agent.TicketCount++
		agent.Revenue = agent.Revenue.Add(ticket.Amount)
		if ticket.SoldAt.After(agent.LastActivityAt) {
			agent.LastActivityAt = ticket.SoldAt
		}
	}

	sort.SliceStable(summary.AgentPerformance, func(i, j int) bool {
		return summary.AgentPerformance[i].TicketCount > summary.AgentPerformance[j].TicketCount
	})

	return summary
}
