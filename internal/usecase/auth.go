package usecase

import (
	"context"
	"log/slog"

	"toolshed/internal/domain/user"
	"toolshed/internal/infra"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/pkg/jwt"
	"toolshed/internal/pkg/password"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*queries.AuthorizedUserView, error)
	Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error)
	GetCurrentUser(ctx context.Context, userID int64) (*queries.AuthorizedUserView, error)
	ValidateToken(tokenString string) (int64, user.Role, error)
	// ForgotPassword never reveals whether the email is registered.
	ForgotPassword(ctx context.Context, email string) error
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	userStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, userStore queries.UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		userStore:  userStore,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, in RegisterInput) (*queries.AuthorizedUserView, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, errs.ErrMissingFields
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var userID int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		userID, err = tx.Users().Create(ctx, tx.DB(), in.Name, in.Email, hash, role.String())
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrEmailTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a.userStore.FindByID(ctx, userID)
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (string, *queries.AuthorizedUserView, error) {
	view, hash, err := a.userStore.FindByEmail(ctx, email)
	if err != nil {
		// Absent users and bad passwords are indistinguishable to the caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, errs.ErrInvalidCredentials
		}
		return "", nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.ComparePassword(hash, plainPassword); err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return "", nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return "", nil, errs.Wrap(err, "failed to generate token")
	}

	return token, view, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID int64) (*queries.AuthorizedUserView, error) {
	view, err := a.userStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *authUseCaseImpl) ForgotPassword(ctx context.Context, email string) error {
	view, _, err := a.userStore.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Mail delivery is not wired up; the token is logged for manual handling.
	slog.Info("password reset requested",
		slog.Int64("user_id", view.ID),
		slog.String("token", uuid.NewString()),
	)
	return nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (int64, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return 0, "", err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return 0, "", jwt.ErrInvalidToken
	}

	return claims.UserID, role, nil
}
