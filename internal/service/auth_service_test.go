package service

import (
	"context"
	"testing"

	"github.com/salva920/AlmacenRepuestos/internal/config"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsuarioRepo struct {
	usuarios map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{usuarios: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	r.usuarios[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.usuarios[username]
	if !ok {
		return nil, errStubNotFound
	}
	return u, nil
}

func (r *stubUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.usuarios)), nil
}

var _ repository.UsuarioRepository = (*stubUsuarioRepo)(nil)

func buildAuthSvc() (AuthService, *stubUsuarioRepo) {
	repo := newStubUsuarioRepo()
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		AdminUsername:      "admin",
		AdminPassword:      "s3cr3to",
	}
	return NewAuthService(repo, cfg, nil), repo
}

func TestAuthInit_CreaAdminUnaVez(t *testing.T) {
	svc, repo := buildAuthSvc()
	ctx := context.Background()

	u, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)
	assert.NotEmpty(t, repo.usuarios["admin"].PasswordHash)

	_, err = svc.Init(ctx)
	assert.ErrorContains(t, err, "Ya existe un usuario")
}

func TestAuthLogin_CredencialesValidas(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	_, err := svc.Init(ctx)
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "s3cr3to"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, 3600, resp.ExpiresIn)

	// The issued token validates
	claims, err := svc.Validar(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
}

func TestAuthLogin_PasswordIncorrecto(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	_, err := svc.Init(ctx)
	require.NoError(t, err)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "otro"})
	assert.ErrorContains(t, err, "Credenciales inválidas")
}

func TestAuthValidar_TokenAdulterado(t *testing.T) {
	svc, _ := buildAuthSvc()
	ctx := context.Background()

	_, err := svc.Init(ctx)
	require.NoError(t, err)
	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "s3cr3to"})
	require.NoError(t, err)

	_, err = svc.Validar(ctx, resp.Token+"x")
	assert.Error(t, err)
}
