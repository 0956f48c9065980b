package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"sahay/internal/models"
	"sahay/internal/repositories"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byPhone map[string]*models.User
	created []*models.User
	updated []*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: make(map[string]*models.User),
		byPhone: make(map[string]*models.User),
	}
}

func (f *fakeUserRepo) Create(u *models.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return repositories.ErrEmailTaken
	}
	if _, ok := f.byPhone[u.Phone]; ok {
		return repositories.ErrPhoneTaken
	}
	u.ID = uint(len(f.created) + 1)
	f.byEmail[u.Email] = u
	f.byPhone[u.Phone] = u
	f.created = append(f.created, u)
	return nil
}

func (f *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	for _, u := range f.created {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByPhone(phone string) (*models.User, error) {
	if u, ok := f.byPhone[phone]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUpiID(upiID string) (*models.User, error) {
	for _, u := range f.created {
		if u.UpiID == upiID {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) Update(u *models.User) error {
	f.updated = append(f.updated, u)
	return nil
}

func (f *fakeUserRepo) IncrementTokenVersion(userID uint) error { return nil }

func (f *fakeUserRepo) UpdateAccountStatus(userID uint, status string) error {
	u, err := f.GetByID(userID)
	if err != nil {
		return err
	}
	u.AccountStatus = status
	return nil
}

func validInput() *models.RegisterUserInput {
	return &models.RegisterUserInput{
		Name:     "Asha Kumar",
		Email:    "asha@example.com",
		Phone:    "9876543210",
		Password: "s3cret!pass",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(validInput())
	require.NoError(t, err)

	assert.Equal(t, "9876543210@sahay", created.UpiID)
	assert.Equal(t, models.DefaultDemoBalance, created.Balance)
	assert.Equal(t, models.DefaultTransactionLimit, created.TransactionLimit)
	assert.Equal(t, models.DefaultDailyLimit, created.DailyLimit)
	assert.Equal(t, models.AccountStatusActive, created.AccountStatus)
	assert.Equal(t, "medium", created.Accessibility.FontSize)
	assert.Equal(t, 1.0, created.Accessibility.VoiceSpeed)

	// Password is stored hashed.
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret!pass")))
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.RegisterUserInput)
		want   error
	}{
		{"missing name", func(in *models.RegisterUserInput) { in.Name = "" }, ErrInvalidInput},
		{"missing email", func(in *models.RegisterUserInput) { in.Email = "" }, ErrInvalidInput},
		{"bad phone", func(in *models.RegisterUserInput) { in.Phone = "12345" }, ErrInvalidInput},
		{"short password", func(in *models.RegisterUserInput) { in.Password = "ab!" }, ErrWeakPassword},
		{"no special char", func(in *models.RegisterUserInput) { in.Password = "longenough1" }, ErrWeakPassword},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo()
			svc := NewService(repo)

			in := validInput()
			tt.mutate(in)

			_, err := svc.Register(in)
			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, repo.created)
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	_, err := svc.Register(validInput())
	require.NoError(t, err)

	dup := validInput()
	dup.Phone = "9812345678"
	_, err = svc.Register(dup)
	assert.ErrorIs(t, err, repositories.ErrEmailTaken)
}

func TestUpdateSettings_NormalizesValues(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(validInput())
	require.NoError(t, err)

	updated, err := svc.UpdateSettings(created.ID, models.AccessibilitySettings{
		EnableVoiceNavigation:    true,
		VoiceSpeed:               -2,
		ConfirmationDelaySeconds: -1,
	})
	require.NoError(t, err)

	assert.True(t, updated.EnableVoiceNavigation)
	assert.Equal(t, "medium", updated.FontSize)
	assert.Equal(t, 1.0, updated.VoiceSpeed)
	assert.Equal(t, 0, updated.ConfirmationDelaySeconds)
}

func TestUpdateAccountStatus(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(validInput())
	require.NoError(t, err)

	require.NoError(t, svc.UpdateAccountStatus(created.ID, models.AccountStatusFrozen))
	assert.Equal(t, models.AccountStatusFrozen, created.AccountStatus)

	assert.ErrorIs(t, svc.UpdateAccountStatus(created.ID, "blocked"), ErrInvalidStatus)
}
