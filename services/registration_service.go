package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"productcatalog/models"
	"productcatalog/utils"
)

// ErrRegistrationEmailTaken는 같은 이메일로 이미 가입된 경우 반환됩니다.
var ErrRegistrationEmailTaken = errors.New("registration email already taken")

// emailCheckMessages are the wordings of the live email check.
var emailCheckMessages = messageOverrides{
	"email." + RuleEmail: "Please enter a valid email address.",
	"email." + RuleMax:   "The email may not be greater than 255 characters.",
}

// RegistrationService는 가입 신청 처리 로직을 정의합니다.
type RegistrationService interface {
	// Register validates req and stores it with a hashed password.
	Register(ctx context.Context, req models.StoreRegistrationRequest) (models.Registration, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	// ValidateEmail reports availability; a taken address is a *ValidationError.
	ValidateEmail(ctx context.Context, req models.ValidateEmailRequest) (models.EmailAvailability, error)
}

type registrationService struct {
	db  SQLExecutor
	now func() time.Time
}

// NewRegistrationService는 RegistrationService 구현체를 생성합니다.
func NewRegistrationService(db SQLExecutor) RegistrationService {
	return &registrationService{db: db, now: time.Now}
}

func (s *registrationService) Register(ctx context.Context, req models.StoreRegistrationRequest) (models.Registration, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	verr := &ValidationError{}
	if err := verr.addValidatorErrors(validate.StructCtx(ctx, req), "", nil); err != nil {
		return models.Registration{}, fmt.Errorf("failed to validate registration: %w", err)
	}

	if !verr.Has("email") {
		exists, err := s.EmailExists(ctx, req.Email)
		if err != nil {
			return models.Registration{}, err
		}
		if exists {
			verr.add("email", RuleUnique, "The email has already been taken.")
		}
	}

	if err := verr.errOrNil(); err != nil {
		return models.Registration{}, err
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		return models.Registration{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return s.insert(ctx, models.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
	})
}

func (s *registrationService) insert(ctx context.Context, reg models.Registration) (_ models.Registration, err error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return models.Registration{}, fmt.Errorf("failed to begin registration transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := s.now().UTC().Truncate(time.Second)
	stamp := utils.FormatDateTimeForDB(now)

	result, err := tx.ExecContext(ctx, `
		INSERT INTO registrations (name, email, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		reg.Name, reg.Email, reg.Password, stamp, stamp,
	)
	if err != nil {
		if isDuplicateKeyError(err) {
			return models.Registration{}, ErrRegistrationEmailTaken
		}
		return models.Registration{}, fmt.Errorf("failed to insert registration: %w", err)
	}

	if reg.ID, err = result.LastInsertId(); err != nil {
		return models.Registration{}, err
	}
	if err = tx.Commit(); err != nil {
		return models.Registration{}, fmt.Errorf("failed to commit registration: %w", err)
	}

	reg.CreatedAt = now
	reg.UpdatedAt = now
	return reg, nil
}

func (s *registrationService) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM registrations WHERE email = ?", strings.TrimSpace(email),
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check registration email: %w", err)
	}
	return count > 0, nil
}

func (s *registrationService) ValidateEmail(ctx context.Context, req models.ValidateEmailRequest) (models.EmailAvailability, error) {
	req.Email = strings.TrimSpace(req.Email)

	verr := &ValidationError{}
	if err := verr.addValidatorErrors(validate.StructCtx(ctx, req), "", emailCheckMessages); err != nil {
		return models.EmailAvailability{}, fmt.Errorf("failed to validate email: %w", err)
	}

	if !verr.Has("email") {
		exists, err := s.EmailExists(ctx, req.Email)
		if err != nil {
			return models.EmailAvailability{}, err
		}
		if exists {
			verr.add("email", RuleUnique, "This email address is already taken.")
		}
	}

	if err := verr.errOrNil(); err != nil {
		return models.EmailAvailability{}, err
	}
	return models.EmailAvailability{Exists: false}, nil
}
