package report_test

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/report"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) Create(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *MockProductRepo) GetByID(id string) (*entity.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Product), args.Error(1)
}
func (m *MockProductRepo) ListIDs() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockProductRepo) List() ([]*entity.Product, error) {
	args := m.Called()
	return args.Get(0).([]*entity.Product), args.Error(1)
}
func (m *MockProductRepo) Update(p *entity.Product) error { return m.Called(p).Error(0) }
func (m *MockProductRepo) Delete(id string) error         { return m.Called(id).Error(0) }

type MockLocationRepo struct{ mock.Mock }

func (m *MockLocationRepo) Create(l *entity.Location) error { return m.Called(l).Error(0) }
func (m *MockLocationRepo) GetByID(id string) (*entity.Location, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Location), args.Error(1)
}
func (m *MockLocationRepo) List() ([]*entity.Location, error) {
	args := m.Called()
	return args.Get(0).([]*entity.Location), args.Error(1)
}
func (m *MockLocationRepo) Update(l *entity.Location) error { return m.Called(l).Error(0) }
func (m *MockLocationRepo) Delete(id string) error          { return m.Called(id).Error(0) }

type MockMovementRepo struct{ mock.Mock }

func (m *MockMovementRepo) Create(mv *entity.Movement) error { return m.Called(mv).Error(0) }
func (m *MockMovementRepo) GetByID(id string) (*entity.Movement, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Movement), args.Error(1)
}
func (m *MockMovementRepo) List() ([]*entity.Movement, error) {
	args := m.Called()
	return args.Get(0).([]*entity.Movement), args.Error(1)
}
func (m *MockMovementRepo) Delete(id string) error { return m.Called(id).Error(0) }
func (m *MockMovementRepo) ExistsForProduct(productID string) (bool, error) {
	args := m.Called(productID)
	return args.Bool(0), args.Error(1)
}
func (m *MockMovementRepo) ExistsForLocation(locationID string) (bool, error) {
	args := m.Called(locationID)
	return args.Bool(0), args.Error(1)
}

func newExportFixture() (*report.ExportUseCase, *MockProductRepo, *MockLocationRepo, *MockMovementRepo) {
	productRepo := new(MockProductRepo)
	locationRepo := new(MockLocationRepo)
	movementRepo := new(MockMovementRepo)
	return report.NewExportUseCase(movementRepo, productRepo, locationRepo), productRepo, locationRepo, movementRepo
}

func TestExportBalanceCSV_MatrizCompletaConCeros(t *testing.T) {
	uc, productRepo, locationRepo, movementRepo := newExportFixture()

	movementRepo.On("List").Return([]*entity.Movement{
		{ID: "m1", ProductID: "PI001", ToLocation: "wh", Qty: 10},
		{ID: "m2", ProductID: "PI001", FromLocation: "wh", ToLocation: "shop", Qty: 4},
		{ID: "m3", ProductID: "PI001", FromLocation: "shop", Qty: 1},
	}, nil)
	productRepo.On("List").Return([]*entity.Product{
		{ID: "PI001", Name: "Widget"},
		{ID: "PI002", Name: "Zumbador"},
	}, nil)
	locationRepo.On("List").Return([]*entity.Location{
		{ID: "shop", Name: "Shop"},
		{ID: "wh", Name: "WH"},
	}, nil)

	out, err := uc.ExportBalanceCSV()
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"Product", "Location", "Balance"},
		{"Widget", "Shop", "3"},
		{"Widget", "WH", "6"},
		// PI002 sin movimientos: aparece igual, con saldo 0.
		{"Zumbador", "Shop", "0"},
		{"Zumbador", "WH", "0"},
	}, records)
}

func TestExportBalanceCSV_SinDatosSoloCabecera(t *testing.T) {
	uc, productRepo, locationRepo, movementRepo := newExportFixture()

	movementRepo.On("List").Return([]*entity.Movement{}, nil)
	productRepo.On("List").Return([]*entity.Product{}, nil)
	locationRepo.On("List").Return([]*entity.Location{}, nil)

	out, err := uc.ExportBalanceCSV()
	require.NoError(t, err)
	assert.Equal(t, "Product,Location,Balance\n", string(out))
}

func TestExportBalanceCSV_NombresConComaQuedanEntrecomillados(t *testing.T) {
	uc, productRepo, locationRepo, movementRepo := newExportFixture()

	movementRepo.On("List").Return([]*entity.Movement{}, nil)
	productRepo.On("List").Return([]*entity.Product{
		{ID: "PI001", Name: "Tornillo, M4"},
	}, nil)
	locationRepo.On("List").Return([]*entity.Location{
		{ID: "wh", Name: "WH"},
	}, nil)

	out, err := uc.ExportBalanceCSV()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"Tornillo, M4",WH,0`)
}
