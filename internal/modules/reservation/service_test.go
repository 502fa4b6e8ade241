package reservation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tenine/internal/modules/notification"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, rec *Reservation) error {
	args := m.Called(ctx, rec)
	if rec != nil {
		rec.ID = 1 // simulate DB insert
	}
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
	configured bool
	sent       []notification.Email
}

func (m *MockSender) Configured() bool {
	return m.configured
}

func (m *MockSender) Send(ctx context.Context, e notification.Email) error {
	m.sent = append(m.sent, e)
	args := m.Called(ctx, e)
	return args.Error(0)
}

func validRequest() *CreateReservationRequest {
	return &CreateReservationRequest{
		Name:     "Kim",
		Email:    "kim@x.com",
		Gender:   "female",
		Date:     "2024-05-01",
		Time:     "오후 02:00",
		Location: "gangnam-11",
		Areas:    []string{"compact"},
		Purpose:  "daily",
	}
}

func TestCreate_MissingFieldHasNoSideEffects(t *testing.T) {
	repo := new(MockRepository)
	sender := &MockSender{configured: true}
	service := NewService(repo, sender, "")

	req := validRequest()
	req.Email = ""

	_, err := service.Create(context.Background(), req)
	require.ErrorIs(t, err, ErrValidation)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	assert.Empty(t, sender.sent)
}

func TestCreate_AppliesFallbackDefaults(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender := &MockSender{configured: true}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo, sender, "")

	req := validRequest()
	req.TotalMinutes = "soon" // not a number, must coerce

	rec, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 9900, rec.Pricing.BasePrice)
	assert.Equal(t, 4900, rec.Pricing.AddOnPrice)
	assert.Equal(t, 9900, rec.Pricing.TotalPrice, "total falls back to base price")
	assert.Equal(t, 10, rec.Pricing.TotalMinutes)
	assert.False(t, rec.CreatedAt.IsZero(), "timestamp is server-assigned")
}

func TestCreate_KeepsClientNumbers(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender := &MockSender{configured: true}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo, sender, "")

	req := validRequest()
	req.AddEyes = true
	req.Areas = []string{"compact", "eyes"}
	// Decoded JSON numbers arrive as float64.
	req.TotalPrice = float64(14800)
	req.TotalMinutes = float64(15)

	rec, err := service.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 14800, rec.Pricing.TotalPrice)
	assert.Equal(t, 15, rec.Pricing.TotalMinutes)
	assert.True(t, rec.Pricing.AddEyes)
	assert.Equal(t, AreaList{"compact", "eyes"}, rec.Areas)
}

func TestCreate_UnconfiguredMailAfterPersist(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender := &MockSender{configured: false}
	service := NewService(repo, sender, "")

	rec, err := service.Create(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrMailConfig)

	// The record went in before the credential check.
	require.NotNil(t, rec)
	repo.AssertNumberOfCalls(t, "Create", 1)
	assert.Empty(t, sender.sent)
}

func TestCreate_SendFailureKeepsRecord(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender := &MockSender{configured: true}
	sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay down"))
	service := NewService(repo, sender, "")

	rec, err := service.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrMailConfig)

	require.NotNil(t, rec)
	repo.AssertNumberOfCalls(t, "Create", 1)
}

func TestCreate_SendsCustomerThenOperator(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	sender := &MockSender{configured: true}
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)
	service := NewService(repo, sender, "https://ten9-inky.vercel.app")

	_, err := service.Create(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "kim@x.com", sender.sent[0].To)
	assert.Equal(t, notification.OperatorEmail, sender.sent[1].To)
}

func TestCreate_PersistFailure(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	sender := &MockSender{configured: true}
	service := NewService(repo, sender, "")

	_, err := service.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.Empty(t, sender.sent, "no mail when the write fails")
}
