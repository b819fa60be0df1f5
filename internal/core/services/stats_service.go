package services

import (
	"context"

	"aw-society/internal/adapters/persistence/models"
	"aw-society/internal/adapters/persistence/repositories"
	"aw-society/internal/core/domain"
)

// interestEstimateRate approximates interest earned as a share of loan
// repayments on the admin dashboard. Display figure only.
const interestEstimateRate = 0.05

// StatsService derives society-wide figures by scanning members and
// transactions on every call. Nothing is cached between calls: the stores
// mutate continuously and callers always get a fresh snapshot. The two scans
// are not taken under a shared lock, so a write landing mid-computation may
// skew a figure by one event.
type StatsService struct {
	memberRepo repositories.MemberRepository
	txnRepo    repositories.TransactionRepository
}

// NewStatsService creates a new stats service
func NewStatsService(memberRepo repositories.MemberRepository, txnRepo repositories.TransactionRepository) *StatsService {
	return &StatsService{
		memberRepo: memberRepo,
		txnRepo:    txnRepo,
	}
}

// Overview is the admin dashboard payload: society figures plus every member
// with their transaction history attached.
type Overview struct {
	Members []*models.MemberResponse `json:"members"`
	Stats   domain.Stats             `json:"stats"`
}

// ComputeStats returns a fresh statistics snapshot
func (s *StatsService) ComputeStats(ctx context.Context) (*domain.Stats, error) {
	members, err := s.memberRepo.ListByRole(ctx, string(domain.RoleMember))
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := computeStats(members, txns)
	return &stats, nil
}

// GetOverview returns the stats snapshot along with members and their history
func (s *StatsService) GetOverview(ctx context.Context) (*Overview, error) {
	members, err := s.memberRepo.ListByRole(ctx, string(domain.RoleMember))
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byMember := make(map[uint][]*models.Transaction)
	for _, t := range txns {
		byMember[t.MemberID] = append(byMember[t.MemberID], t)
	}

	responses := make([]*models.MemberResponse, len(members))
	for i, m := range members {
		resp := m.ToResponse()
		resp.History = byMember[m.ID]
		responses[i] = resp
	}

	return &Overview{
		Members: responses,
		Stats:   computeStats(members, txns),
	}, nil
}

func computeStats(members []*models.Member, txns []*models.Transaction) domain.Stats {
	stats := domain.Stats{
		TotalMembers: int64(len(members)),
	}

	for _, m := range members {
		stats.TotalCollection += m.CollectionPaid
		if m.CollectionStatus == string(domain.CollectionDue) {
			stats.PendingAmount += m.PlanAmount
		}
		if m.LoanActive {
			stats.ActiveLoans++
			stats.OutstandingLoan += m.LoanRemaining
		}
	}

	for _, t := range txns {
		if t.Type == string(domain.TxLoanPayment) {
			stats.TotalInterest += t.Amount * interestEstimateRate
		}
	}

	return stats
}
