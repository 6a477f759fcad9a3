package dashboard

import (
	"context"
	"math"
	"time"

	domainEstadia "austay/internal/domain/estadia"
	appErrors "austay/pkg/errors"
)

// Service builds the read-only rollups over current and upcoming stays.
type Service struct {
	estadiaRepo domainEstadia.Repository
	capacity    int
	now         func() time.Time
}

// NewService creates a new dashboard service. capacity is the number of
// boarding slots the facility offers.
func NewService(estadiaRepo domainEstadia.Repository, capacity int) *Service {
	return &Service{
		estadiaRepo: estadiaRepo,
		capacity:    capacity,
		now:         time.Now,
	}
}

func (s *Service) Overview(ctx context.Context) (*DashboardResponse, error) {
	today := truncateToDay(s.now())

	hosted, err := s.estadiaRepo.CountHosted(ctx, today)
	if err != nil {
		return nil, err
	}

	var occupancy float64
	if s.capacity > 0 {
		occupancy = math.Round(float64(hosted)/float64(s.capacity)*100*100) / 100
	}

	todaySummary, err := s.summaryFor(ctx, today)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.summaries(ctx, today, 1, 7)
	if err != nil {
		return nil, err
	}

	return &DashboardResponse{
		TotalPetsHospedados: hosted,
		TaxaOcupacao:        occupancy,
		Hoje:                todaySummary,
		ProximosDias:        upcoming,
		CapacidadeMaxima:    s.capacity,
	}, nil
}

func (s *Service) PetsHospedados(ctx context.Context) ([]*PetHospedadoResponse, error) {
	today := truncateToDay(s.now())

	stays, err := s.estadiaRepo.ListHosted(ctx, today)
	if err != nil {
		return nil, err
	}

	responses := make([]*PetHospedadoResponse, len(stays))
	for i, h := range stays {
		responses[i] = toPetHospedadoResponse(h)
	}

	return responses, nil
}

// MoreDays returns check-in/check-out counts for a forward window.
// startDay is 1-based: 1 means tomorrow.
func (s *Service) MoreDays(ctx context.Context, startDay, numDays int) (*MoreDaysResponse, error) {
	if startDay < 1 || numDays < 1 || numDays > 30 {
		return nil, appErrors.ErrInvalidInput
	}

	today := truncateToDay(s.now())
	summaries, err := s.summaries(ctx, today, startDay, numDays)
	if err != nil {
		return nil, err
	}

	return &MoreDaysResponse{CheckInsCheckOuts: summaries}, nil
}

func (s *Service) Movimentacoes(ctx context.Context, date string) (*MovimentacoesResponse, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, appErrors.ErrInvalidInput
	}

	checkIns, err := s.estadiaRepo.ListCheckIns(ctx, day)
	if err != nil {
		return nil, err
	}

	checkOuts, err := s.estadiaRepo.ListCheckOuts(ctx, day)
	if err != nil {
		return nil, err
	}

	resp := &MovimentacoesResponse{
		Data:      day.Format(dateLayout),
		CheckIns:  make([]*MovementResponse, len(checkIns)),
		CheckOuts: make([]*MovementResponse, len(checkOuts)),
	}
	for i, m := range checkIns {
		resp.CheckIns[i] = toMovementResponse(m)
	}
	for i, m := range checkOuts {
		resp.CheckOuts[i] = toMovementResponse(m)
	}

	return resp, nil
}

func (s *Service) summaryFor(ctx context.Context, day time.Time) (CheckInOutSummary, error) {
	checkIns, err := s.estadiaRepo.CountCheckIns(ctx, day)
	if err != nil {
		return CheckInOutSummary{}, err
	}

	checkOuts, err := s.estadiaRepo.CountCheckOuts(ctx, day)
	if err != nil {
		return CheckInOutSummary{}, err
	}

	return CheckInOutSummary{
		Date:      day.Format(dateLayout),
		CheckIns:  checkIns,
		CheckOuts: checkOuts,
	}, nil
}

func (s *Service) summaries(ctx context.Context, today time.Time, startDay, numDays int) ([]CheckInOutSummary, error) {
	out := make([]CheckInOutSummary, 0, numDays)
	for i := startDay; i < startDay+numDays; i++ {
		day := today.AddDate(0, 0, i)
		summary, err := s.summaryFor(ctx, day)
		if err != nil {
			return nil, err
		}
		out = append(out, summary)
	}
	return out, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
