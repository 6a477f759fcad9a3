package tutor

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"

	domainTutor "austay/internal/domain/tutor"
	"austay/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeTutorRepo struct {
	domainTutor.Repository
	tutors   map[uuid.UUID]*domainTutor.Tutor
	detached []uuid.UUID
}

func newFakeTutorRepo() *fakeTutorRepo {
	return &fakeTutorRepo{tutors: make(map[uuid.UUID]*domainTutor.Tutor)}
}

func (f *fakeTutorRepo) Create(ctx context.Context, t *domainTutor.Tutor) error {
	for _, existing := range f.tutors {
		if existing.CPF == t.CPF {
			return domainTutor.ErrCPFAlreadyExists
		}
	}
	t.ID = uuid.New()
	stored := *t
	f.tutors[t.ID] = &stored
	return nil
}

func (f *fakeTutorRepo) GetByID(ctx context.Context, id uuid.UUID) (*domainTutor.Tutor, error) {
	t, ok := f.tutors[id]
	if !ok {
		return nil, domainTutor.ErrTutorNotFound
	}
	out := *t
	return &out, nil
}

func (f *fakeTutorRepo) Update(ctx context.Context, t *domainTutor.Tutor) error {
	if _, ok := f.tutors[t.ID]; !ok {
		return domainTutor.ErrTutorNotFound
	}
	stored := *t
	f.tutors[t.ID] = &stored
	return nil
}

func (f *fakeTutorRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.tutors[id]; !ok {
		return domainTutor.ErrTutorNotFound
	}
	f.detached = append(f.detached, id)
	delete(f.tutors, id)
	return nil
}

func createTutor(t *testing.T, svc *Service, cpf string) *TutorResponse {
	t.Helper()
	resp, err := svc.Create(context.Background(), &CreateRequest{
		Name:  "Maria Silva",
		CPF:   cpf,
		Phone: "11987654321",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return resp
}

func TestCreateTutor(t *testing.T) {
	repo := newFakeTutorRepo()
	svc := NewService(repo)

	resp := createTutor(t, svc, "12345678901")

	if resp.ID == uuid.Nil {
		t.Error("created tutor has no id")
	}
	if resp.CPF != "12345678901" {
		t.Errorf("cpf = %q, want the one submitted", resp.CPF)
	}
	if len(repo.tutors) != 1 {
		t.Errorf("tutors stored = %d, want 1", len(repo.tutors))
	}
}

func TestCreateTutorDuplicateCPF(t *testing.T) {
	repo := newFakeTutorRepo()
	svc := NewService(repo)
	createTutor(t, svc, "12345678901")

	_, err := svc.Create(context.Background(), &CreateRequest{
		Name:  "Outra Maria",
		CPF:   "12345678901",
		Phone: "11912341234",
	})
	if err != domainTutor.ErrCPFAlreadyExists {
		t.Errorf("Create() error = %v, want ErrCPFAlreadyExists", err)
	}
	if len(repo.tutors) != 1 {
		t.Errorf("tutors stored = %d, want the duplicate rejected", len(repo.tutors))
	}
}

func TestCreateTutorRejectsMalformedCPF(t *testing.T) {
	svc := NewService(newFakeTutorRepo())

	cases := []string{"123", "123.456.789-01", "1234567890a"}
	for _, cpf := range cases {
		if _, err := svc.Create(context.Background(), &CreateRequest{
			Name:  "Maria Silva",
			CPF:   cpf,
			Phone: "11987654321",
		}); err == nil {
			t.Errorf("Create() accepted cpf %q", cpf)
		}
	}
}

func TestUpdateTutorMergesOnlyProvidedFields(t *testing.T) {
	repo := newFakeTutorRepo()
	svc := NewService(repo)
	created := createTutor(t, svc, "12345678901")

	phone := "21999998888"
	updated, err := svc.Update(context.Background(), created.ID, &UpdateRequest{Phone: &phone})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.Phone != phone {
		t.Errorf("phone = %q, want %q", updated.Phone, phone)
	}
	if updated.Name != created.Name || updated.CPF != created.CPF {
		t.Error("fields not present in the request were changed")
	}
}

func TestDeleteTutorDetachesPets(t *testing.T) {
	repo := newFakeTutorRepo()
	svc := NewService(repo)
	created := createTutor(t, svc, "12345678901")

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if len(repo.tutors) != 0 {
		t.Errorf("tutors stored = %d, want 0", len(repo.tutors))
	}
	if len(repo.detached) != 1 || repo.detached[0] != created.ID {
		t.Errorf("detached = %v, want the deleted tutor's associations cleared", repo.detached)
	}
}

func TestDeleteUnknownTutor(t *testing.T) {
	svc := NewService(newFakeTutorRepo())

	if err := svc.Delete(context.Background(), uuid.New()); err != domainTutor.ErrTutorNotFound {
		t.Errorf("Delete() error = %v, want ErrTutorNotFound", err)
	}
}
