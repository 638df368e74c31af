package rankservice

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/smilaev/refledger/internal/domain"
)

// Metric is one member's value for a single ranking dimension.
type Metric struct {
	MemberID  int
	Value     decimal.Decimal
	CreatedAt time.Time
}

// AssignRanks orders metrics by (value desc, createdAt asc) and assigns
// competition ranks: ties share a rank and the next distinct value skips
// ahead by the tie-group size (1,2,2,4). The sort key is the single
// source of truth for tie-breaking, so two runs over the same input always
// produce identical assignments.
func AssignRanks(metrics []Metric) []domain.RankAssignment {
	sorted := make([]Metric, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		if cmp := sorted[i].Value.Cmp(sorted[j].Value); cmp != 0 {
			return cmp > 0
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	assignments := make([]domain.RankAssignment, len(sorted))
	rank := 0
	for i, m := range sorted {
		if i == 0 || !m.Value.Equal(sorted[i-1].Value) {
			rank = i + 1
		}
		assignments[i] = domain.RankAssignment{MemberID: m.MemberID, Rank: rank}
	}
	return assignments
}

func earningsMetrics(rows []domain.RankRow) []Metric {
	metrics := make([]Metric, len(rows))
	for i, r := range rows {
		metrics[i] = Metric{MemberID: r.MemberID, Value: r.Earnings, CreatedAt: r.CreatedAt}
	}
	return metrics
}

func referralMetrics(rows []domain.RankRow) []Metric {
	metrics := make([]Metric, len(rows))
	for i, r := range rows {
		metrics[i] = Metric{MemberID: r.MemberID, Value: decimal.NewFromInt(int64(r.Referred)), CreatedAt: r.CreatedAt}
	}
	return metrics
}
