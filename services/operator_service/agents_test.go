package operator_service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkpulse-analytics/model/operator_model"
)

func ticketFor(agentID, agentName string, amount int64, soldAt time.Time) operator_model.Ticket {
	return operator_model.Ticket{
		SoldByID:   agentID,
		SoldByName: agentName,
		Amount:     decimal.NewFromInt(amount),
		SoldAt:     soldAt,
	}
}

func TestRankAgentsEmpty(t *testing.T) {
	summary := rankAgents(nil)

	assert.Equal(t, int64(0), summary.TotalTicketsToday)
	assert.Equal(t, "0", summary.TotalRevenueToday.String())
	assert.Empty(t, summary.AgentPerformance)
}

func TestRankAgentsOrdersByCountNotRevenue(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	summary := rankAgents([]operator_model.Ticket{
		// amina: one big ticket, chidi: three small ones
		ticketFor("amina", "Amina Bello", 50000, base),
		ticketFor("chidi", "Chidi Okafor", 1000, base.Add(time.Minute)),
		ticketFor("chidi", "Chidi Okafor", 1000, base.Add(2*time.Minute)),
		ticketFor("chidi", "Chidi Okafor", 1000, base.Add(3*time.Minute)),
	})

	require.Len(t, summary.AgentPerformance, 2)
	assert.Equal(t, "chidi", summary.AgentPerformance[0].AgentID)
	assert.Equal(t, int64(3), summary.AgentPerformance[0].TicketCount)
	assert.Equal(t, "amina", summary.AgentPerformance[1].AgentID)
	assert.True(t, summary.AgentPerformance[1].Revenue.GreaterThan(summary.AgentPerformance[0].Revenue))
}

func TestRankAgentsTieKeepsFirstSeenOrder(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	summary := rankAgents([]operator_model.Ticket{
		ticketFor("tunde", "Tunde Bakare", 2000, base),
		ticketFor("amina", "Amina Bello", 9000, base.Add(time.Minute)),
	})

	require.Len(t, summary.AgentPerformance, 2)
	assert.Equal(t, "tunde", summary.AgentPerformance[0].AgentID)
	assert.Equal(t, "amina", summary.AgentPerformance[1].AgentID)
}

func TestRankAgentsTracksLastActivity(t *testing.T) {
	base := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	summary := rankAgents([]operator_model.Ticket{
		ticketFor("chidi", "Chidi Okafor", 1000, base),
		ticketFor("chidi", "Chidi Okafor", 1500, base.Add(3*time.Hour)),
		ticketFor("chidi", "Chidi Okafor", 1200, base.Add(time.Hour)),
	})

	require.Len(t, summary.AgentPerformance, 1)
	agent := summary.AgentPerformance[0]
	assert.Equal(t, base.Add(3*time.Hour), agent.LastActivityAt)
	assert.Equal(t, int64(3), agent.TicketCount)
	assert.Equal(t, "3700", agent.Revenue.String())
	assert.Equal(t, "3700", summary.TotalRevenueToday.String())
}
