package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "agrox/internal/delivery/context"
	"agrox/internal/domain/entity"
	domainerrors "agrox/internal/domain/errors"
	"agrox/internal/domain/repository"
	"agrox/internal/domain/service"
	"agrox/internal/errors"
	"agrox/internal/usecase"

	"go.uber.org/fx"
)

const (
	msgRequiredFields   = "Please fill in all required fields"
	msgPasswordMismatch = "Passwords do not match"
	msgAcceptTerms      = "Please accept the Terms of Service and Privacy Policy"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	clock       service.Clock
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Clock       service.Clock
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		clock:       params.Clock,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the form, stores the user and logs them in.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Session, error) {
	if msg := validateRegistration(input); msg != "" {
		return nil, domainerrors.NewValidationError([]string{msg})
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}

	user := &entity.User{
		Email:        strings.TrimSpace(input.Email),
		Password:     input.Password,
		Role:         role,
		Name:         strings.TrimSpace(input.FirstName) + " " + strings.TrimSpace(input.LastName),
		Phone:        strings.TrimSpace(input.Phone),
		Location:     strings.TrimSpace(input.Location),
		BusinessName: strings.TrimSpace(input.BusinessName),
		FarmSize:     strings.TrimSpace(input.FarmSize),
		CreatedAt:    srv.clock.Now(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}
	if err := srv.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}

	srv.log(ctx).Info("User registered",
		slog.String("email", user.Email),
		slog.String("role", user.Role.String()),
	)

	return entity.NewSession(user, srv.clock.Now()), nil
}

// validateRegistration returns the first failing check, or "".
func validateRegistration(input *usecase.RegisterInput) string {
	required := []string{
		input.FirstName,
		input.LastName,
		input.Email,
		input.Phone,
		input.Location,
		input.Role,
		input.Password,
		input.ConfirmPassword,
	}
	for _, v := range required {
		if strings.TrimSpace(v) == "" {
			return msgRequiredFields
		}
	}
	if input.Password != input.ConfirmPassword {
		return msgPasswordMismatch
	}
	if !input.AcceptTerms {
		return msgAcceptTerms
	}

	return ""
}

// Login compares the stored credential and stores the current user.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.Session, error) {
	user, err := srv.userRepo.FindByEmail(ctx, strings.TrimSpace(input.Email))
	if errors.Is(err, domainerrors.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user.Password != input.Password {
		srv.log(ctx).Warn("Login rejected", slog.String("email", user.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if err := srv.sessionRepo.SetCurrentUser(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to start session")
	}
	srv.log(ctx).Info("User logged in", slog.String("email", user.Email))

	return entity.NewSession(user, srv.clock.Now()), nil
}

func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.sessionRepo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

func (srv *sessionService) Current(ctx context.Context) (*entity.Session, error) {
	user, err := srv.sessionRepo.CurrentUser(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if user == nil {
		return nil, domainerrors.ErrNotLoggedIn
	}

	return entity.NewSession(user, srv.clock.Now()), nil
}

func (srv *sessionService) PasswordStrength(password string) usecase.PasswordStrength {
	score := entity.PasswordStrength(password)

	return usecase.PasswordStrength{
		Score: score,
		Label: entity.PasswordStrengthLabel(score),
	}
}
