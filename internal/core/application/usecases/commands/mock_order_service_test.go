package commands_test

import (
	"context"

	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderService struct{ mock.Mock }

func (m *MockOrderService) Login(ctx context.Context, username, password string) (user.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockOrderService) Logout(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderService) LoadContext(ctx context.Context) (ports.ContextInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).(ports.ContextInfo), args.Error(1)
}

func (m *MockOrderService) ListOrders(ctx context.Context, filter registry.Filter) ([]order.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]order.Order), args.Error(1)
}

func (m *MockOrderService) GetOrder(ctx context.Context, id int) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) CreateOrder(ctx context.Context, fornecedor string, items []item.Item) (order.Order, error) {
	args := m.Called(ctx, fornecedor, items)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) UpdateOrderItems(ctx context.Context, id int, items []item.Item) (order.Order, error) {
	args := m.Called(ctx, id, items)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) ApproveOrder(ctx context.Context, id int) (order.Order, string, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.String(1), args.Error(2)
}

func (m *MockOrderService) GenerateOrder(ctx context.Context, id int) (order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(order.Order), args.Error(1)
}

func (m *MockOrderService) DownloadArtifact(ctx context.Context, id int) (string, []byte, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Get(1).([]byte), args.Error(2)
}

func (m *MockOrderService) CreateSupplier(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockOrderService) CreateUser(ctx context.Context, username, password string, role user.Role) error {
	args := m.Called(ctx, username, password, role)
	return args.Error(0)
}

func (m *MockOrderService) DeleteUser(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}

func (m *MockOrderService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	args := m.Called(ctx, currentPassword, newPassword)
	return args.Error(0)
}

type MockRegistrySyncer struct{ mock.Mock }

func (m *MockRegistrySyncer) Sync(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
