package service

import (
	"context"
	"errors"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/apierror"
	"github.com/salva920/AlmacenRepuestos/internal/config"
	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

const denylistPrefix = "auth:denylist:"

// Claims are the JWT claims issued at login. The ID (jti) lets logout
// revoke a single token via the Redis denylist.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type AuthService interface {
	// Init creates the admin user from configuration if no user exists yet.
	Init(ctx context.Context) (*model.Usuario, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout revokes the token until its natural expiry.
	Logout(ctx context.Context, token string) error
	// Validar parses and verifies a token, rejecting revoked ones.
	Validar(ctx context.Context, token string) (*Claims, error)
}

type authService struct {
	repo     repository.UsuarioRepository
	cfg      *config.Config
	denylist *redis.Client // nil disables revocation checks
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config, denylist *redis.Client) AuthService {
	return &authService{repo: repo, cfg: cfg, denylist: denylist}
}

func (s *authService) Init(ctx context.Context) (*model.Usuario, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, apierror.Interno("error consultando usuarios: %v", err)
	}
	if count > 0 {
		return nil, apierror.Conflicto("Ya existe un usuario registrado")
	}
	if s.cfg.AdminPassword == "" {
		return nil, apierror.Validacion("ADMIN_PASSWORD no está configurado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierror.Interno("error generando hash: %v", err)
	}
	usuario := &model.Usuario{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, usuario); err != nil {
		return nil, apierror.Interno("error creando usuario: %v", err)
	}
	log.Info().Str("username", usuario.Username).Msg("usuario administrador creado")
	return usuario, nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, apierror.Validacion("Credenciales inválidas")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apierror.Validacion("Credenciales inválidas")
	}

	expira := time.Duration(s.cfg.JWTExpirationHours) * time.Hour
	claims := Claims{
		Username: usuario.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   usuario.ID.String(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expira)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, apierror.Interno("error firmando token: %v", err)
	}

	return &dto.LoginResponse{
		Token:     token,
		Username:  usuario.Username,
		ExpiresIn: int(expira.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return apierror.Validacion("Token inválido")
	}
	if s.denylist == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.denylist.Set(ctx, denylistPrefix+claims.ID, "1", ttl).Err(); err != nil {
		return apierror.Interno("error revocando token: %v", err)
	}
	return nil
}

func (s *authService) Validar(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, apierror.Validacion("Token inválido o expirado")
	}
	if s.denylist != nil && claims.ID != "" {
		existe, err := s.denylist.Exists(ctx, denylistPrefix+claims.ID).Result()
		if err != nil {
			log.Warn().Err(err).Msg("no se pudo consultar la denylist de tokens")
		} else if existe > 0 {
			return nil, apierror.Validacion("Token revocado")
		}
	}
	return claims, nil
}

func (s *authService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token inválido")
	}
	return claims, nil
}
