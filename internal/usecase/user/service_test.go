package user

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"austay/internal/config"
	domainUser "austay/internal/domain/user"
	"austay/internal/logger"
	appErrors "austay/pkg/errors"
	"austay/pkg/utils"
)

func TestMain(m *testing.M) {
	if err := logger.Init("production"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeUserRepo struct {
	domainUser.Repository
	users  map[uuid.UUID]*domainUser.User
	tokens []*domainUser.PasswordResetToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*domainUser.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domainUser.User) error {
	u.ID = uuid.New()
	stored := *u
	f.users[u.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domainUser.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, domainUser.ErrUserNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domainUser.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domainUser.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (f *fakeUserRepo) CreateResetToken(ctx context.Context, token *domainUser.PasswordResetToken) error {
	token.ID = uuid.New()
	stored := *token
	f.tokens = append(f.tokens, &stored)
	return nil
}

func (f *fakeUserRepo) GetResetToken(ctx context.Context, userID uuid.UUID, token string) (*domainUser.PasswordResetToken, error) {
	for _, t := range f.tokens {
		if t.UserID == userID && t.Token == token {
			out := *t
			return &out, nil
		}
	}
	return nil, domainUser.ErrResetTokenInvalid
}

func (f *fakeUserRepo) ResetPassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	u, ok := f.users[userID]
	if !ok {
		return domainUser.ErrUserNotFound
	}
	u.PasswordHashed = passwordHash

	kept := f.tokens[:0]
	for _, t := range f.tokens {
		if t.UserID != userID {
			kept = append(kept, t)
		}
	}
	f.tokens = kept
	return nil
}

type fakeMailer struct {
	sent   []string
	bodies []string
	fail   error
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.fail != nil {
		return f.fail
	}
	f.sent = append(f.sent, to)
	f.bodies = append(f.bodies, body)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", ExpiryMinutes: 30},
		Boarding: config.BoardingConfig{
			Capacity:             50,
			ResetTokenTTLMinutes: 15,
		},
	}
}

func registerUser(t *testing.T, svc *Service, email string) *UserResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Ana Souza",
		Email:    email,
		Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return resp
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())

	registerUser(t, svc, "ana@example.com")

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Name:     "Outra Ana",
		Email:    "ana@example.com",
		Password: "supersecret2",
	})
	if !errors.Is(err, domainUser.ErrEmailAlreadyUsed) {
		t.Errorf("Register() error = %v, want ErrEmailAlreadyUsed", err)
	}
}

func TestLoginReturnsBearerToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	registerUser(t, svc, "ana@example.com")

	resp, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ana@example.com",
		Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", resp.TokenType)
	}

	claims, err := utils.ValidateToken(resp.AccessToken, "test-secret")
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Subject != "ana@example.com" {
		t.Errorf("subject = %q, want the user email", claims.Subject)
	}
}

func TestLoginWrongPasswordAndUnknownEmailLookTheSame(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	registerUser(t, svc, "ana@example.com")

	_, errWrongPass := svc.Login(context.Background(), &LoginRequest{
		Email:    "ana@example.com",
		Password: "not-the-password",
	})
	_, errUnknown := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})

	if !errors.Is(errWrongPass, appErrors.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPass)
	}
	if !errors.Is(errUnknown, appErrors.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errUnknown)
	}
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	svc := NewService(repo, mail, testConfig())

	err := svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ghost@example.com"})
	if err != nil {
		t.Fatalf("ForgotPassword() error = %v, want nil for unknown email", err)
	}
	if len(repo.tokens) != 0 {
		t.Errorf("tokens created = %d, want 0", len(repo.tokens))
	}
	if len(mail.sent) != 0 {
		t.Errorf("mails sent = %d, want 0", len(mail.sent))
	}
}

func TestForgotPasswordIssuesCodeAndMailsIt(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	svc := NewService(repo, mail, testConfig())
	registerUser(t, svc, "ana@example.com")

	if err := svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ana@example.com"}); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	if len(repo.tokens) != 1 {
		t.Fatalf("tokens created = %d, want 1", len(repo.tokens))
	}
	token := repo.tokens[0]
	if len(token.Token) != 6 {
		t.Errorf("token length = %d, want a 6-digit code", len(token.Token))
	}
	if time.Until(token.ExpiresAt) > 15*time.Minute {
		t.Errorf("expiry %v further out than the configured TTL", token.ExpiresAt)
	}
	if len(mail.sent) != 1 || mail.sent[0] != "ana@example.com" {
		t.Errorf("mails sent = %v, want one to the user", mail.sent)
	}
}

func TestForgotPasswordMailNamesConfiguredTTL(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{}
	cfg := testConfig()
	cfg.Boarding.ResetTokenTTLMinutes = 45
	svc := NewService(repo, mail, cfg)
	registerUser(t, svc, "ana@example.com")

	if err := svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ana@example.com"}); err != nil {
		t.Fatalf("ForgotPassword() error = %v", err)
	}

	if len(mail.bodies) != 1 {
		t.Fatalf("mails sent = %d, want 1", len(mail.bodies))
	}
	body := mail.bodies[0]
	if !strings.Contains(body, repo.tokens[0].Token) {
		t.Error("mail body does not carry the verification code")
	}
	if !strings.Contains(body, "45 minutos") {
		t.Errorf("mail body does not mention the configured expiry:\n%s", body)
	}
}

func TestForgotPasswordSurvivesMailFailure(t *testing.T) {
	repo := newFakeUserRepo()
	mail := &fakeMailer{fail: errors.New("smtp down")}
	svc := NewService(repo, mail, testConfig())
	registerUser(t, svc, "ana@example.com")

	if err := svc.ForgotPassword(context.Background(), &ForgotPasswordRequest{Email: "ana@example.com"}); err != nil {
		t.Fatalf("ForgotPassword() error = %v, want nil despite mail failure", err)
	}
	if len(repo.tokens) != 1 {
		t.Errorf("tokens created = %d, want 1", len(repo.tokens))
	}
}

func TestVerifyResetToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	created := registerUser(t, svc, "ana@example.com")

	repo.tokens = append(repo.tokens, &domainUser.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    created.ID,
		Token:     "123456",
		ExpiresAt: time.Now().Add(10 * time.Minute),
	})

	cases := []struct {
		name    string
		email   string
		token   string
		wantErr error
	}{
		{"valid", "ana@example.com", "123456", nil},
		{"wrong code", "ana@example.com", "654321", domainUser.ErrResetTokenInvalid},
		{"unknown user", "ghost@example.com", "123456", domainUser.ErrUserNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.VerifyResetToken(context.Background(), &VerifyResetTokenRequest{
				Email: tc.email,
				Token: tc.token,
			})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("VerifyResetToken() error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestVerifyResetTokenExpired(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	created := registerUser(t, svc, "ana@example.com")

	repo.tokens = append(repo.tokens, &domainUser.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    created.ID,
		Token:     "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	err := svc.VerifyResetToken(context.Background(), &VerifyResetTokenRequest{
		Email: "ana@example.com",
		Token: "123456",
	})
	if !errors.Is(err, domainUser.ErrResetTokenInvalid) {
		t.Errorf("VerifyResetToken() error = %v, want ErrResetTokenInvalid", err)
	}
}

func TestResetPasswordConsumesEveryToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	created := registerUser(t, svc, "ana@example.com")

	for _, code := range []string{"111111", "222222"} {
		repo.tokens = append(repo.tokens, &domainUser.PasswordResetToken{
			ID:        uuid.New(),
			UserID:    created.ID,
			Token:     code,
			ExpiresAt: time.Now().Add(10 * time.Minute),
		})
	}

	err := svc.ResetPassword(context.Background(), &ResetPasswordRequest{
		Email:       "ana@example.com",
		Token:       "111111",
		NewPassword: "brand-new-pass",
	})
	if err != nil {
		t.Fatalf("ResetPassword() error = %v", err)
	}

	if len(repo.tokens) != 0 {
		t.Errorf("tokens left = %d, want all consumed", len(repo.tokens))
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ana@example.com",
		Password: "brand-new-pass",
	}); err != nil {
		t.Errorf("Login() with new password error = %v", err)
	}

	// The sibling code must be dead too.
	err = svc.ResetPassword(context.Background(), &ResetPasswordRequest{
		Email:       "ana@example.com",
		Token:       "222222",
		NewPassword: "another-new-pass",
	})
	if !errors.Is(err, domainUser.ErrResetTokenInvalid) {
		t.Errorf("replayed reset error = %v, want ErrResetTokenInvalid", err)
	}
}

func TestResetPasswordExpiredTokenLeavesHashAlone(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	created := registerUser(t, svc, "ana@example.com")
	before := repo.users[created.ID].PasswordHashed

	repo.tokens = append(repo.tokens, &domainUser.PasswordResetToken{
		ID:        uuid.New(),
		UserID:    created.ID,
		Token:     "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	err := svc.ResetPassword(context.Background(), &ResetPasswordRequest{
		Email:       "ana@example.com",
		Token:       "123456",
		NewPassword: "brand-new-pass",
	})
	if !errors.Is(err, domainUser.ErrResetTokenInvalid) {
		t.Errorf("ResetPassword() error = %v, want ErrResetTokenInvalid", err)
	}
	if repo.users[created.ID].PasswordHashed != before {
		t.Error("password hash changed after a failed reset")
	}
}

func TestUpdateOtherUserIsForbidden(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &fakeMailer{}, testConfig())
	ana := registerUser(t, svc, "ana@example.com")
	bia := registerUser(t, svc, "bia@example.com")

	name := "Hijacked"
	_, err := svc.Update(context.Background(), ana.ID, bia.ID, &UpdateRequest{Name: &name})
	if !errors.Is(err, appErrors.ErrForbidden) {
		t.Errorf("Update() error = %v, want ErrForbidden", err)
	}

	if err := svc.Delete(context.Background(), ana.ID, bia.ID); !errors.Is(err, appErrors.ErrForbidden) {
		t.Errorf("Delete() error = %v, want ErrForbidden", err)
	}
}
