package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/d8-app/d8-api/internal/config"
	"github.com/d8-app/d8-api/internal/modules/model"
	"github.com/d8-app/d8-api/internal/pkg/utils/secrets"
	"github.com/d8-app/d8-api/internal/pkg/utils/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeviceRepo struct {
	mock.Mock
}

func (m *MockDeviceRepo) Create(ctx context.Context, d *model.Device) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeviceRepo) GetByTokenHMAC(ctx context.Context, hmac string) (*model.Device, error) {
	args := m.Called(ctx, hmac)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceRepo) TouchLastSeen(ctx context.Context, hmac string) error {
	args := m.Called(ctx, hmac)
	return args.Error(0)
}

func deviceConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			DeviceTokenPrefix: "d8_device_",
			SecretPepper:      "pepper",
		},
	}
}

func TestDeviceService_Register(t *testing.T) {
	repoMock := new(MockDeviceRepo)
	var stored *model.Device
	repoMock.On("Create", mock.Anything, mock.MatchedBy(func(d *model.Device) bool {
		stored = d
		return d.UserID == "user-1" && d.Platform == "ios" && d.TokenHMAC != "" && d.TokenPHC != ""
	})).Return(nil)

	svc := NewDeviceService(repoMock, deviceConfig())
	token, d, err := svc.Register(context.Background(), "user-1", "ios")
	require.NoError(t, err)
	require.NotNil(t, d)

	require.True(t, strings.HasPrefix(token, "d8_device_"))
	secret, ok := tokens.ParseToken(token, "d8_device_")
	require.True(t, ok)

	// The stored digests verify against the issued token.
	assert.Equal(t, tokens.HMAC256Hex("pepper", secret), stored.TokenHMAC)
	match, err := secrets.VerifySecret(secret, "pepper", stored.TokenPHC)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestDeviceService_Register_EmptyUser(t *testing.T) {
	svc := NewDeviceService(new(MockDeviceRepo), deviceConfig())
	_, _, err := svc.Register(context.Background(), "", "ios")
	assert.Error(t, err)
}

func TestDeviceService_Register_TokensAreUnique(t *testing.T) {
	repoMock := new(MockDeviceRepo)
	repoMock.On("Create", mock.Anything, mock.Anything).Return(nil)
	svc := NewDeviceService(repoMock, deviceConfig())

	a, _, err := svc.Register(context.Background(), "user-1", "ios")
	require.NoError(t, err)
	b, _, err := svc.Register(context.Background(), "user-1", "ios")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDeviceService_Register_CreateError(t *testing.T) {
	repoMock := new(MockDeviceRepo)
	repoMock.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	svc := NewDeviceService(repoMock, deviceConfig())

	_, _, err := svc.Register(context.Background(), "user-1", "ios")
	assert.Error(t, err)
}
