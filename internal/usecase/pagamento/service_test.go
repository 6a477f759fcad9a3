package pagamento

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	domainEstadia "austay/internal/domain/estadia"
	"austay/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeEstadiaRepo struct {
	domainEstadia.Repository
	estadias   map[uuid.UUID]*domainEstadia.Estadia
	pagamentos map[uuid.UUID]*domainEstadia.Pagamento
}

func (f *fakeEstadiaRepo) GetPagamentoByID(ctx context.Context, id uuid.UUID) (*domainEstadia.Pagamento, error) {
	p, ok := f.pagamentos[id]
	if !ok {
		return nil, domainEstadia.ErrPagamentoNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeEstadiaRepo) GetPagamentoByEstadia(ctx context.Context, estadiaID uuid.UUID) (*domainEstadia.Pagamento, error) {
	for _, p := range f.pagamentos {
		if p.EstadiaID == estadiaID {
			out := *p
			return &out, nil
		}
	}
	return nil, domainEstadia.ErrPagamentoNotFound
}

func (f *fakeEstadiaRepo) SyncPagamento(ctx context.Context, p *domainEstadia.Pagamento) error {
	if _, ok := f.pagamentos[p.ID]; !ok {
		return domainEstadia.ErrPagamentoNotFound
	}
	stored := *p
	f.pagamentos[p.ID] = &stored
	if e, ok := f.estadias[p.EstadiaID]; ok {
		e.Pago = p.Paid
	}
	return nil
}

// seed installs an estadia with its payment row, the state Create leaves
// behind, and returns both ids.
func seed(repo *fakeEstadiaRepo, amount *float64, paid bool) (uuid.UUID, uuid.UUID) {
	estadiaID := uuid.New()
	repo.estadias[estadiaID] = &domainEstadia.Estadia{
		ID:    estadiaID,
		Total: amount,
		Pago:  paid,
	}

	p := &domainEstadia.Pagamento{
		ID:        uuid.New(),
		EstadiaID: estadiaID,
		Amount:    amount,
		Paid:      paid,
	}
	repo.pagamentos[p.ID] = p
	return estadiaID, p.ID
}

func newFakeRepo() *fakeEstadiaRepo {
	return &fakeEstadiaRepo{
		estadias:   make(map[uuid.UUID]*domainEstadia.Estadia),
		pagamentos: make(map[uuid.UUID]*domainEstadia.Pagamento),
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestPayMarksBothRowsPaid(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, pagamentoID := seed(repo, floatPtr(300), false)
	svc := NewService(repo)

	resp, err := svc.Pay(context.Background(), &PayRequest{
		EstadiaID:     estadiaID,
		MeioPagamento: "pix",
		DataPagamento: "2026-03-15",
	})
	if err != nil {
		t.Fatalf("Pay() error = %v", err)
	}

	if !resp.Status {
		t.Error("response status = false, want paid")
	}
	if resp.MeioPagamento == nil || *resp.MeioPagamento != "pix" {
		t.Errorf("meio_pagamento = %v, want pix", resp.MeioPagamento)
	}

	if !repo.pagamentos[pagamentoID].Paid {
		t.Error("pagamento row not marked paid")
	}
	if !repo.estadias[estadiaID].Pago {
		t.Error("estadia pago flag not mirrored")
	}
}

func TestPayRejectsAlreadyPaid(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, _ := seed(repo, floatPtr(300), true)
	svc := NewService(repo)

	_, err := svc.Pay(context.Background(), &PayRequest{
		EstadiaID:     estadiaID,
		MeioPagamento: "pix",
		DataPagamento: "2026-03-15",
	})
	if err != domainEstadia.ErrPagamentoAlreadyPaid {
		t.Errorf("Pay() error = %v, want ErrPagamentoAlreadyPaid", err)
	}
}

func TestPayRejectsOpenStay(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, pagamentoID := seed(repo, nil, false)
	svc := NewService(repo)

	_, err := svc.Pay(context.Background(), &PayRequest{
		EstadiaID:     estadiaID,
		MeioPagamento: "pix",
		DataPagamento: "2026-03-15",
	})
	if err != domainEstadia.ErrAmountNotYetKnown {
		t.Errorf("Pay() error = %v, want ErrAmountNotYetKnown", err)
	}
	if repo.pagamentos[pagamentoID].Paid {
		t.Error("rejected payment must leave the row unpaid")
	}
}

func TestPayUnknownEstadia(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Pay(context.Background(), &PayRequest{
		EstadiaID:     uuid.New(),
		MeioPagamento: "pix",
		DataPagamento: "2026-03-15",
	})
	if err != domainEstadia.ErrPagamentoNotFound {
		t.Errorf("Pay() error = %v, want ErrPagamentoNotFound", err)
	}
}

func TestUpdateUnpayClearsMethodAndDate(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, pagamentoID := seed(repo, floatPtr(300), true)
	method := "cartao"
	when := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	repo.pagamentos[pagamentoID].Method = &method
	repo.pagamentos[pagamentoID].PaidDate = &when
	svc := NewService(repo)

	status := false
	resp, err := svc.Update(context.Background(), pagamentoID, &UpdateRequest{Status: &status})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if resp.Status {
		t.Error("status = true, want unpaid")
	}
	if resp.MeioPagamento != nil || resp.DataPagamento != nil {
		t.Errorf("method/date = %v/%v, want both nil", resp.MeioPagamento, resp.DataPagamento)
	}
	if resp.Valor == nil || *resp.Valor != 300 {
		t.Errorf("valor = %v, want 300 preserved", resp.Valor)
	}
	if repo.estadias[estadiaID].Pago {
		t.Error("estadia pago flag not mirrored back to false")
	}
}

func TestDeleteResetsInsteadOfRemoving(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, pagamentoID := seed(repo, floatPtr(300), true)
	method := "pix"
	repo.pagamentos[pagamentoID].Method = &method
	svc := NewService(repo)

	resp, err := svc.Delete(context.Background(), pagamentoID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if resp.Status {
		t.Error("status = true, want reset to unpaid")
	}
	if _, ok := repo.pagamentos[pagamentoID]; !ok {
		t.Fatal("pagamento row was removed, want it kept")
	}
	if repo.pagamentos[pagamentoID].Amount == nil {
		t.Error("amount was cleared, want it preserved")
	}
	if repo.estadias[estadiaID].Pago {
		t.Error("estadia pago flag not reset")
	}
}

func TestPayAfterResetSucceeds(t *testing.T) {
	repo := newFakeRepo()
	estadiaID, pagamentoID := seed(repo, floatPtr(150), true)
	svc := NewService(repo)

	if _, err := svc.Delete(context.Background(), pagamentoID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	resp, err := svc.Pay(context.Background(), &PayRequest{
		EstadiaID:     estadiaID,
		MeioPagamento: "dinheiro",
		DataPagamento: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("Pay() after reset error = %v", err)
	}
	if resp.Valor == nil || *resp.Valor != 150 {
		t.Errorf("valor = %v, want 150", resp.Valor)
	}
}
