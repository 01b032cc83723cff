package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"productcatalog/models"
	"productcatalog/testutil"
	"productcatalog/utils"
)

func TestRegistrationService_Register(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewRegistrationService(NewSQLExecutor(db))

	reg, err := svc.Register(context.Background(), models.StoreRegistrationRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotZero(t, reg.ID)
	assert.False(t, reg.CreatedAt.IsZero())

	var stored string
	require.NoError(t, db.QueryRow("SELECT password FROM registrations WHERE email = ?", "test@example.com").Scan(&stored))
	assert.NotEqual(t, "password123", stored)
	assert.True(t, utils.CheckPassword(stored, "password123"))
}

func TestRegistrationService_RegisterValidation(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewRegistrationService(NewSQLExecutor(db))
	_, err := svc.Register(context.Background(), models.StoreRegistrationRequest{
		Name: "Existing", Email: "existing@example.com", Password: "password123",
	})
	require.NoError(t, err)

	tests := []struct {
		name  string
		req   models.StoreRegistrationRequest
		field string
		rule  string
	}{
		{"missing name", models.StoreRegistrationRequest{Email: "a@example.com", Password: "password123"}, "name", RuleRequired},
		{"long name", models.StoreRegistrationRequest{Name: strings.Repeat("n", 256), Email: "a@example.com", Password: "password123"}, "name", RuleMax},
		{"missing email", models.StoreRegistrationRequest{Name: "A", Password: "password123"}, "email", RuleRequired},
		{"invalid email", models.StoreRegistrationRequest{Name: "A", Email: "invalid-email", Password: "password123"}, "email", RuleEmail},
		{"taken email", models.StoreRegistrationRequest{Name: "A", Email: "existing@example.com", Password: "password123"}, "email", RuleUnique},
		{"missing password", models.StoreRegistrationRequest{Name: "A", Email: "a@example.com"}, "password", RuleRequired},
		{"short password", models.StoreRegistrationRequest{Name: "A", Email: "a@example.com", Password: "short"}, "password", RuleMin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.req)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.HasRule(tt.field, tt.rule), "fields: %v", verr.Fields)
		})
	}

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM registrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestRegistrationService_DuplicateInsertIsEmailTaken(t *testing.T) {
	db := testutil.NewDB(t)
	svc := &registrationService{db: NewSQLExecutor(db), now: time.Now}

	_, err := svc.insert(context.Background(), models.Registration{Name: "A", Email: "dup@example.com", Password: "x"})
	require.NoError(t, err)

	_, err = svc.insert(context.Background(), models.Registration{Name: "B", Email: "dup@example.com", Password: "y"})
	assert.True(t, errors.Is(err, ErrRegistrationEmailTaken))
}

func TestRegistrationService_ValidateEmail(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewRegistrationService(NewSQLExecutor(db))
	ctx := context.Background()
	_, err := svc.Register(ctx, models.StoreRegistrationRequest{Name: "T", Email: "taken@example.com", Password: "password123"})
	require.NoError(t, err)

	availability, err := svc.ValidateEmail(ctx, models.ValidateEmailRequest{Email: "available@example.com"})
	require.NoError(t, err)
	assert.False(t, availability.Exists)

	_, err = svc.ValidateEmail(ctx, models.ValidateEmailRequest{Email: "taken@example.com"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"This email address is already taken."}, verr.Messages()["email"])

	_, err = svc.ValidateEmail(ctx, models.ValidateEmailRequest{})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasRule("email", RuleRequired))

	_, err = svc.ValidateEmail(ctx, models.ValidateEmailRequest{Email: "not-an-email"})
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.HasRule("email", RuleEmail))

	exists, err := svc.EmailExists(ctx, "taken@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
}
