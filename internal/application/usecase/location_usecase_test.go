package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/usecase"
	"github.com/jhoicas/Bodega-api/internal/domain"
)

func newLocationFixture() (*usecase.LocationUseCase, *MockLocationRepo, *MockMovementRepo) {
	locationRepo := new(MockLocationRepo)
	movementRepo := new(MockMovementRepo)
	tx := &stubTxRunner{product: new(MockProductRepo), location: locationRepo, movement: movementRepo}
	return usecase.NewLocationUseCase(tx, locationRepo, movementRepo), locationRepo, movementRepo
}

func TestLocationCreate_AsignaCodigoCorto(t *testing.T) {
	uc, locationRepo, _ := newLocationFixture()
	locationRepo.On("Create", mock.AnythingOfType("*entity.Location")).Return(nil)

	out, err := uc.Create(context.Background(), dto.CreateLocationRequest{Name: "Bodega Central"})

	require.NoError(t, err)
	assert.Len(t, out.ID, 8)
	assert.Equal(t, "Bodega Central", out.Name)
}

func TestLocationCreate_ReintentaAnteColisionDeCodigo(t *testing.T) {
	uc, locationRepo, _ := newLocationFixture()
	locationRepo.On("Create", mock.AnythingOfType("*entity.Location")).Return(domain.ErrDuplicate).Once()
	locationRepo.On("Create", mock.AnythingOfType("*entity.Location")).Return(nil).Once()

	_, err := uc.Create(context.Background(), dto.CreateLocationRequest{Name: "Tienda"})

	require.NoError(t, err)
	locationRepo.AssertNumberOfCalls(t, "Create", 2)
}

func TestLocationCreate_NombreDuplicado(t *testing.T) {
	uc, locationRepo, _ := newLocationFixture()
	locationRepo.On("Create", mock.AnythingOfType("*entity.Location")).Return(domain.ErrDuplicateName)

	_, err := uc.Create(context.Background(), dto.CreateLocationRequest{Name: "Bodega Central"})

	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	// El nombre duplicado no es colisión de código: no se reintenta.
	locationRepo.AssertNumberOfCalls(t, "Create", 1)
}

func TestLocationDelete_BloqueadaPorMovimientos(t *testing.T) {
	uc, locationRepo, movementRepo := newLocationFixture()
	movementRepo.On("ExistsForLocation", "wh1").Return(true, nil)

	err := uc.Delete(context.Background(), "wh1")

	assert.ErrorIs(t, err, domain.ErrHasDependents)
	locationRepo.AssertNotCalled(t, "Delete", "wh1")
}

func TestLocationDelete_ExitosaSinDependientes(t *testing.T) {
	uc, locationRepo, movementRepo := newLocationFixture()
	movementRepo.On("ExistsForLocation", "wh1").Return(false, nil)
	locationRepo.On("Delete", "wh1").Return(nil)

	assert.NoError(t, uc.Delete(context.Background(), "wh1"))
}

func TestLocationUpdate_NoExiste(t *testing.T) {
	uc, locationRepo, _ := newLocationFixture()
	locationRepo.On("GetByID", "nope").Return(nil, nil)

	_, err := uc.Update("nope", dto.UpdateLocationRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLocationGetByID_AusenteDevuelveNil(t *testing.T) {
	uc, locationRepo, _ := newLocationFixture()
	locationRepo.On("GetByID", "nope").Return(nil, nil)

	out, err := uc.GetByID("nope")

	require.NoError(t, err)
	assert.Nil(t, out)
}
