package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AbnerMSaconi/GerenciadorReservas/internal/domain"
	"github.com/AbnerMSaconi/GerenciadorReservas/internal/service/ports/mocks"
)

func newClientService(t *testing.T) (*ClientService, *mocks.MockClientRepo, *mocks.MockReservationRepo) {
	t.Helper()
	clientRepo := mocks.NewMockClientRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	svc := NewClientService(clientRepo, reservationRepo, fixedClock{testNow})
	return svc, clientRepo, reservationRepo
}

func strptr(s string) *string { return &s }

func TestClientService_Create_Success(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	clientRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	client, err := svc.Create(context.Background(), domain.ClientInput{
		Name:  "Acme Corp",
		Email: strptr("billing@acme.example"),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.Equal(t, "Acme Corp", client.Name)
	assert.Equal(t, testNow, client.CreatedAt)
}

func TestClientService_Create_TrimsAndNilsEmptyOptionals(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	clientRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	client, err := svc.Create(context.Background(), domain.ClientInput{
		Name:  "  Acme Corp  ",
		Phone: strptr("   "),
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", client.Name)
	assert.Nil(t, client.Phone)
}

func TestClientService_Create_NameTooShort(t *testing.T) {
	svc, _, _ := newClientService(t)

	_, err := svc.Create(context.Background(), domain.ClientInput{Name: "ab"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Create_InvalidEmail(t *testing.T) {
	svc, _, _ := newClientService(t)

	_, err := svc.Create(context.Background(), domain.ClientInput{
		Name:  "Acme Corp",
		Email: strptr("not-an-email"),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestClientService_Update_Success(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	existing := &domain.Client{
		ID:        "c1",
		Name:      "Old Name",
		CreatedAt: testNow.Add(-24 * time.Hour),
		UpdatedAt: testNow.Add(-24 * time.Hour),
	}

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	clientRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	client, err := svc.Update(context.Background(), "c1", domain.ClientInput{Name: "New Name"})

	require.NoError(t, err)
	assert.Equal(t, "New Name", client.Name)
	assert.Equal(t, testNow, client.UpdatedAt)
}

func TestClientService_Update_NotFound(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClientNotFound)

	_, err := svc.Update(context.Background(), "missing", domain.ClientInput{Name: "New Name"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_Delete_Success(t *testing.T) {
	svc, clientRepo, reservationRepo := newClientService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1"}, nil)
	reservationRepo.EXPECT().ExistsByClient(mock.Anything, "c1").Return(false, nil)
	clientRepo.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	err := svc.Delete(context.Background(), "c1")

	require.NoError(t, err)
}

func TestClientService_Delete_HasReservations(t *testing.T) {
	svc, clientRepo, reservationRepo := newClientService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1"}, nil)
	reservationRepo.EXPECT().ExistsByClient(mock.Anything, "c1").Return(true, nil)

	err := svc.Delete(context.Background(), "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClientHasReservations)
	assert.Len(t, clientRepo.Calls, 1) // no Delete call
}

func TestClientService_Delete_NotFound(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrClientNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_Delete_CheckError(t *testing.T) {
	svc, clientRepo, reservationRepo := newClientService(t)

	clientRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Client{ID: "c1"}, nil)
	reservationRepo.EXPECT().ExistsByClient(mock.Anything, "c1").Return(false, errors.New("db error"))

	err := svc.Delete(context.Background(), "c1")

	require.Error(t, err)
}

func TestClientService_List(t *testing.T) {
	svc, clientRepo, _ := newClientService(t)

	clients := []*domain.Client{{ID: "c1", Name: "Acme Corp"}}
	clientRepo.EXPECT().List(mock.Anything).Return(clients, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)
}
