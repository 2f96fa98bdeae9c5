package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"catalogo/internal/config"
	"catalogo/internal/dto"
	"catalogo/internal/model"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubUsuarioRepo struct {
	users map[string]*model.Usuario
}

func newStubUsuarioRepo() *stubUsuarioRepo {
	return &stubUsuarioRepo{users: make(map[string]*model.Usuario)}
}

func (r *stubUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	u.ID = uuid.New()
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) FindByUsername(_ context.Context, username string) (*model.Usuario, error) {
	u, ok := r.users[username]
	if !ok || !u.Activo {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (r *stubUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (r *stubUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	users := make([]model.Usuario, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, *u)
	}
	return users, nil
}

func (r *stubUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	r.users[u.Username] = u
	return nil
}

func (r *stubUsuarioRepo) Desactivar(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Activo = false
			return nil
		}
	}
	return errors.New("not found")
}

func (r *stubUsuarioRepo) Reactivar(_ context.Context, id uuid.UUID) error {
	for _, u := range r.users {
		if u.ID == id {
			u.Activo = true
			return nil
		}
	}
	return errors.New("not found")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func newTestCfg() *config.Config {
	return &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
	}
}

func seedUser(t *testing.T, repo *stubUsuarioRepo, username, password, rol string) *model.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	assert.NoError(t, err)
	u := &model.Usuario{
		ID: uuid.New(), Username: username, Nombre: "Test", Apellido: "User",
		PasswordHash: string(hash), Rol: rol, Activo: true,
	}
	repo.users[username] = u
	return u
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestLogin_OK(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUser(t, repo, "editor1", "secreta", "editor")
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "editor1", Password: "secreta",
	})
	assert.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "editor", resp.User.Rol)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	// The access token must verify against the configured secret and carry
	// the role claim the middleware authorizes on.
	token, err := jwt.Parse(resp.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	assert.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "editor", claims["rol"])
	assert.Equal(t, "editor1", claims["username"])
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUser(t, repo, "editor1", "secreta", "editor")
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "editor1", Password: "otra",
	})
	assert.Error(t, err)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUser(t, repo, "baja", "secreta", "lector")
	u.Activo = false
	svc := NewAuthService(repo, newTestCfg())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "baja", Password: "secreta",
	})
	assert.Error(t, err)
}

func TestRefresh_OK(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUser(t, repo, "admin1", "secreta", "administrador")
	svc := NewAuthService(repo, newTestCfg())

	login, err := svc.Login(context.Background(), dto.LoginRequest{
		Username: "admin1", Password: "secreta",
	})
	assert.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	assert.NoError(t, err)
	assert.Equal(t, "admin1", refreshed.User.Username)
}

func TestRefresh_TokenInvalido(t *testing.T) {
	svc := NewAuthService(newStubUsuarioRepo(), newTestCfg())
	_, err := svc.Refresh(context.Background(), "no-es-un-jwt")
	assert.Error(t, err)
}

func TestCrearUsuario_HashYActivo(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewAuthService(repo, newTestCfg())

	resp, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "nuevo", Nombre: "Nueva", Apellido: "Cuenta",
		Password: "secreta", Rol: "lector",
	})
	assert.NoError(t, err)
	assert.True(t, resp.Activo)

	stored := repo.users["nuevo"]
	assert.NotEqual(t, "secreta", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta")))
}

func TestDesactivarReactivarUsuario(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUser(t, repo, "temporal", "secreta", "lector")
	svc := NewAuthService(repo, newTestCfg())
	ctx := context.Background()

	assert.NoError(t, svc.DesactivarUsuario(ctx, u.ID))
	_, err := svc.Login(ctx, dto.LoginRequest{Username: "temporal", Password: "secreta"})
	assert.Error(t, err)

	assert.NoError(t, svc.ReactivarUsuario(ctx, u.ID))
	_, err = svc.Login(ctx, dto.LoginRequest{Username: "temporal", Password: "secreta"})
	assert.NoError(t, err)
}
