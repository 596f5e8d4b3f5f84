package http_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	adapterhttp "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/restapi"
	"pedidos/internal/core/domain/model/item"
	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory backing store shared by the fake repositories, so
// handler tests run without a database.
type memStore struct {
	mu        sync.Mutex
	nextID    int
	pedidos   map[int]order.Order
	suppliers map[string]struct{}
	users     map[string]ports.Account
}

func newMemStore() *memStore {
	return &memStore{
		pedidos:   make(map[int]order.Order),
		suppliers: make(map[string]struct{}),
		users:     make(map[string]ports.Account),
	}
}

func (s *memStore) seedUser(t *testing.T, username, password string, role user.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s.users[username] = ports.Account{
		User:         user.Restore(username, role),
		PasswordHash: string(hash),
	}
}

type memUnitOfWork struct {
	store *memStore
}

func (u memUnitOfWork) Create() ports.UnitOfWork                 { return u }
func (u memUnitOfWork) Begin(context.Context) error              { return nil }
func (u memUnitOfWork) Commit(context.Context) error             { return nil }
func (u memUnitOfWork) Rollback(context.Context) error           { return nil }
func (u memUnitOfWork) PedidoRepository() ports.PedidoRepository { return memPedidoRepo{u.store} }
func (u memUnitOfWork) UserRepository() ports.UserRepository     { return memUserRepo{u.store} }

func (u memUnitOfWork) SupplierRepository() ports.SupplierRepository {
	return memSupplierRepo{u.store}
}

type memPedidoRepo struct{ store *memStore }

func (r memPedidoRepo) Add(_ context.Context, o order.Order) (order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.nextID++
	created := order.Restore(r.store.nextID, o.Fornecedor(), o.CreatedBy(), o.CreatedAt(),
		o.Status(), o.Items(), o.Artifact())
	r.store.pedidos[created.ID()] = created
	return created, nil
}

func (r memPedidoRepo) Update(_ context.Context, o order.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.pedidos[o.ID()]; !ok {
		return errs.NewObjectNotFoundError("pedido", o.ID())
	}
	r.store.pedidos[o.ID()] = o
	return nil
}

func (r memPedidoRepo) Get(_ context.Context, id int) (order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	o, ok := r.store.pedidos[id]
	if !ok {
		return order.Order{}, errs.NewObjectNotFoundError("pedido", id)
	}
	return o, nil
}

func (r memPedidoRepo) GetAll(_ context.Context, fornecedor string, status order.Status) ([]order.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var orders []order.Order
	for _, o := range r.store.pedidos {
		if fornecedor != "" && o.Fornecedor() != fornecedor {
			continue
		}
		if status != "" && o.Status() != status {
			continue
		}
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID() > orders[j].ID() })
	return orders, nil
}

func (r memPedidoRepo) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var removed int64
	for id, o := range r.store.pedidos {
		if o.CreatedAt().Before(cutoff) {
			delete(r.store.pedidos, id)
			removed++
		}
	}
	return removed, nil
}

type memSupplierRepo struct{ store *memStore }

func (r memSupplierRepo) Add(_ context.Context, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.suppliers[name] = struct{}{}
	return nil
}

func (r memSupplierRepo) GetAll(context.Context) ([]string, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	names := make([]string, 0, len(r.store.suppliers))
	for name := range r.store.suppliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (r memSupplierRepo) Exists(_ context.Context, name string) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.suppliers[name]
	return ok, nil
}

type memUserRepo struct{ store *memStore }

func (r memUserRepo) Add(_ context.Context, account ports.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.users[account.User.Username()] = account
	return nil
}

func (r memUserRepo) Get(_ context.Context, username string) (ports.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.users[username]
	if !ok {
		return ports.Account{}, errs.NewObjectNotFoundError("user", username)
	}
	return account, nil
}

func (r memUserRepo) GetAll(context.Context) ([]ports.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	accounts := make([]ports.Account, 0, len(r.store.users))
	for _, account := range r.store.users {
		accounts = append(accounts, account)
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].User.Username() < accounts[j].User.Username()
	})
	return accounts, nil
}

func (r memUserRepo) Delete(_ context.Context, username string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[username]; !ok {
		return errs.NewObjectNotFoundError("user", username)
	}
	delete(r.store.users, username)
	return nil
}

func (r memUserRepo) UpdatePassword(_ context.Context, username, passwordHash string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	account, ok := r.store.users[username]
	if !ok {
		return errs.NewObjectNotFoundError("user", username)
	}
	account.PasswordHash = passwordHash
	r.store.users[username] = account
	return nil
}

// memArtifacts is an in-memory artifact generator; fail switches it into a
// broken state to exercise the approve-with-warning path.
type memArtifacts struct {
	mu    sync.Mutex
	fail  bool
	files map[string][]byte
}

func newMemArtifacts() *memArtifacts {
	return &memArtifacts{files: make(map[string][]byte)}
}

func (a *memArtifacts) Generate(_ context.Context, o order.Order) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.fail {
		return "", errors.New("export directory unavailable")
	}
	filename := fmt.Sprintf("%s_%s.csv", o.Fornecedor(), o.CreatedAt().Format("2006-01-02"))
	a.files[filename] = []byte("QUANTIDADE;CODIGO\n")
	return filename, nil
}

func (a *memArtifacts) Open(filename string) (io.ReadCloser, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	content, ok := a.files[filename]
	if !ok {
		return nil, errors.New("no such artifact")
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func startBackend(t *testing.T) (string, *memStore, *memArtifacts) {
	t.Helper()

	store := newMemStore()
	store.seedUser(t, "MIGUEL", "1234", user.Creator)
	store.seedUser(t, "MICHEL", "1234", user.Approver)
	store.seedUser(t, "LUCAS", "1234", user.Admin)
	store.suppliers["ACME"] = struct{}{}

	arts := newMemArtifacts()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	server := adapterhttp.NewServer(memUnitOfWork{store}, arts, 7, logger)

	e := echo.New()
	server.RegisterRoutes(e)
	ts := httptest.NewServer(e)
	t.Cleanup(ts.Close)

	return ts.URL, store, arts
}

func loginAs(t *testing.T, baseURL, username, password string) *restapi.Client {
	t.Helper()
	client, err := restapi.NewClient(baseURL, 5*time.Second)
	require.NoError(t, err)
	_, err = client.Login(t.Context(), username, password)
	require.NoError(t, err)
	return client
}

func validItems(t *testing.T) []item.Item {
	t.Helper()
	it, err := item.New(item.Data{
		Quantidade: 2,
		Codigo:     "X1",
		Descricao:  "Widget",
		Valor:      decimal.RequireFromString("10"),
		Estoque:    5,
	})
	require.NoError(t, err)
	return []item.Item{it}
}

func TestServer_Login(t *testing.T) {
	baseURL, _, _ := startBackend(t)

	t.Run("authenticates_case_insensitively", func(t *testing.T) {
		client, err := restapi.NewClient(baseURL, 5*time.Second)
		require.NoError(t, err)

		u, err := client.Login(t.Context(), "miguel", "1234")

		require.NoError(t, err)
		assert.Equal(t, "MIGUEL", u.Username())
		assert.Equal(t, user.Creator, u.Role())
	})

	t.Run("rejects_wrong_password", func(t *testing.T) {
		client, err := restapi.NewClient(baseURL, 5*time.Second)
		require.NoError(t, err)

		_, err = client.Login(t.Context(), "MIGUEL", "wrong")

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Usuario ou senha invalidos", rejection.Message)
	})

	t.Run("api_requires_session", func(t *testing.T) {
		client, err := restapi.NewClient(baseURL, 5*time.Second)
		require.NoError(t, err)

		_, err = client.ListOrders(t.Context(), registry.Filter{})

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "autenticacao requerida", rejection.Message)
	})

	t.Run("logout_invalidates_session", func(t *testing.T) {
		client := loginAs(t, baseURL, "MIGUEL", "1234")

		require.NoError(t, client.Logout(t.Context()))

		_, err := client.ListOrders(t.Context(), registry.Filter{})
		require.ErrorIs(t, err, errs.ErrRemoteRejection)
	})
}

func TestServer_Context(t *testing.T) {
	baseURL, _, _ := startBackend(t)

	t.Run("creator_sees_no_accounts", func(t *testing.T) {
		client := loginAs(t, baseURL, "MIGUEL", "1234")

		info, err := client.LoadContext(t.Context())

		require.NoError(t, err)
		assert.Equal(t, "MIGUEL", info.User.Username())
		assert.Equal(t, []string{"ACME"}, info.Suppliers)
		assert.Equal(t, order.KnownStatuses(), info.Statuses)
		assert.Empty(t, info.Users)
		assert.Equal(t, int64(7), info.PurgedOnStart)
		assert.True(t, info.ArtifactAvailable)
	})

	t.Run("admin_sees_accounts", func(t *testing.T) {
		client := loginAs(t, baseURL, "LUCAS", "1234")

		info, err := client.LoadContext(t.Context())

		require.NoError(t, err)
		assert.Len(t, info.Users, 3)
	})
}

func TestServer_OrderLifecycle(t *testing.T) {
	baseURL, _, _ := startBackend(t)
	creator := loginAs(t, baseURL, "MIGUEL", "1234")
	approver := loginAs(t, baseURL, "MICHEL", "1234")

	created, err := creator.CreateOrder(t.Context(), "ACME", validItems(t))
	require.NoError(t, err)
	assert.Equal(t, order.Pendente, created.Status())
	assert.Equal(t, "MIGUEL", created.CreatedBy())
	require.NotZero(t, created.ID())

	t.Run("list_reflects_created_order", func(t *testing.T) {
		orders, err := creator.ListOrders(t.Context(), registry.Filter{Fornecedor: "ACME"})
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, created.ID(), orders[0].ID())
	})

	t.Run("update_replaces_items_while_pending", func(t *testing.T) {
		it, err := item.New(item.Data{
			Quantidade: 9, Codigo: "Y2", Descricao: "Bolt",
			Valor: decimal.RequireFromString("1.25"), Estoque: 0,
		})
		require.NoError(t, err)

		updated, err := creator.UpdateOrderItems(t.Context(), created.ID(), []item.Item{it})

		require.NoError(t, err)
		require.Len(t, updated.Items(), 1)
		assert.Equal(t, "Y2", updated.Items()[0].Codigo)
	})

	t.Run("creator_cannot_approve", func(t *testing.T) {
		_, _, err := creator.ApproveOrder(t.Context(), created.ID())

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "permissao negada", rejection.Message)
	})

	t.Run("approve_generates_artifact_eagerly", func(t *testing.T) {
		approved, warning, err := approver.ApproveOrder(t.Context(), created.ID())

		require.NoError(t, err)
		assert.Empty(t, warning)
		assert.Equal(t, order.Gerado, approved.Status())
		assert.True(t, approved.HasArtifact())
	})

	t.Run("approve_twice_is_rejected", func(t *testing.T) {
		_, _, err := approver.ApproveOrder(t.Context(), created.ID())

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Pedido ja foi processado", rejection.Message)
	})

	t.Run("update_after_approval_is_rejected", func(t *testing.T) {
		_, err := creator.UpdateOrderItems(t.Context(), created.ID(), validItems(t))

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Somente pedidos pendentes podem ser alterados", rejection.Message)
	})

	t.Run("regenerate_is_idempotent", func(t *testing.T) {
		first, err := creator.GetOrder(t.Context(), created.ID())
		require.NoError(t, err)

		regenerated, err := creator.GenerateOrder(t.Context(), created.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Gerado, regenerated.Status())
		assert.Equal(t, first.Artifact(), regenerated.Artifact())
	})

	t.Run("download_streams_the_artifact", func(t *testing.T) {
		filename, content, err := creator.DownloadArtifact(t.Context(), created.ID())

		require.NoError(t, err)
		assert.Contains(t, filename, "ACME_")
		assert.NotEmpty(t, content)
	})
}

func TestServer_CreatePedidoValidation(t *testing.T) {
	baseURL, _, _ := startBackend(t)
	client := loginAs(t, baseURL, "MIGUEL", "1234")

	assertRejected := func(t *testing.T, err error, msg string) {
		t.Helper()
		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, msg, rejection.Message)
	}

	t.Run("missing_supplier", func(t *testing.T) {
		_, err := client.CreateOrder(t.Context(), "  ", validItems(t))
		assertRejected(t, err, "Selecione um fornecedor")
	})

	t.Run("unknown_supplier", func(t *testing.T) {
		_, err := client.CreateOrder(t.Context(), "GLOBEX", validItems(t))
		assertRejected(t, err, "Fornecedor nao encontrado")
	})

	t.Run("no_items", func(t *testing.T) {
		_, err := client.CreateOrder(t.Context(), "ACME", nil)
		assertRejected(t, err, "Adicione pelo menos um item")
	})

	t.Run("generate_requires_approval", func(t *testing.T) {
		created, err := client.CreateOrder(t.Context(), "ACME", validItems(t))
		require.NoError(t, err)

		_, err = client.GenerateOrder(t.Context(), created.ID())
		assertRejected(t, err, "Pedido precisa estar aprovado para gerar arquivo")
	})

	t.Run("unknown_order_is_404", func(t *testing.T) {
		_, err := client.GetOrder(t.Context(), 9999)
		assertRejected(t, err, "Pedido nao encontrado")
	})
}

func TestServer_ApproveWarning(t *testing.T) {
	baseURL, _, arts := startBackend(t)
	creator := loginAs(t, baseURL, "MIGUEL", "1234")
	approver := loginAs(t, baseURL, "MICHEL", "1234")

	created, err := creator.CreateOrder(t.Context(), "ACME", validItems(t))
	require.NoError(t, err)

	arts.mu.Lock()
	arts.fail = true
	arts.mu.Unlock()

	approved, warning, err := approver.ApproveOrder(t.Context(), created.ID())

	require.NoError(t, err, "a generation failure must not fail the approval")
	assert.Equal(t, "Pedido aprovado, mas houve erro ao gerar arquivo automaticamente.", warning)
	assert.Equal(t, order.Aprovado, approved.Status())
	assert.False(t, approved.HasArtifact())

	t.Run("recovers_once_generation_works_again", func(t *testing.T) {
		arts.mu.Lock()
		arts.fail = false
		arts.mu.Unlock()

		generated, err := creator.GenerateOrder(t.Context(), created.ID())

		require.NoError(t, err)
		assert.Equal(t, order.Gerado, generated.Status())
		assert.True(t, generated.HasArtifact())
	})
}

// Two editors replacing the same pending order's items do not conflict: the
// later PUT wins wholesale. There is no versioning on orders.
func TestServer_EditsAreLastWriteWins(t *testing.T) {
	baseURL, _, _ := startBackend(t)
	first := loginAs(t, baseURL, "MIGUEL", "1234")
	second := loginAs(t, baseURL, "MICHEL", "1234")

	created, err := first.CreateOrder(t.Context(), "ACME", validItems(t))
	require.NoError(t, err)

	firstEdit, err := item.New(item.Data{
		Quantidade: 3, Codigo: "A1", Descricao: "From first editor",
		Valor: decimal.RequireFromString("2"),
	})
	require.NoError(t, err)
	secondEdit, err := item.New(item.Data{
		Quantidade: 8, Codigo: "B2", Descricao: "From second editor",
		Valor: decimal.RequireFromString("4"),
	})
	require.NoError(t, err)

	_, err = first.UpdateOrderItems(t.Context(), created.ID(), []item.Item{firstEdit})
	require.NoError(t, err)
	_, err = second.UpdateOrderItems(t.Context(), created.ID(), []item.Item{secondEdit})
	require.NoError(t, err)

	final, err := first.GetOrder(t.Context(), created.ID())
	require.NoError(t, err)
	require.Len(t, final.Items(), 1)
	assert.Equal(t, "B2", final.Items()[0].Codigo)
}

func TestServer_Suppliers(t *testing.T) {
	baseURL, _, _ := startBackend(t)
	client := loginAs(t, baseURL, "MIGUEL", "1234")

	t.Run("create", func(t *testing.T) {
		require.NoError(t, client.CreateSupplier(t.Context(), "GLOBEX"))

		info, err := client.LoadContext(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []string{"ACME", "GLOBEX"}, info.Suppliers)
	})

	t.Run("duplicate_is_rejected", func(t *testing.T) {
		err := client.CreateSupplier(t.Context(), "ACME")

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Fornecedor ja existe", rejection.Message)
	})

	t.Run("empty_name_is_rejected", func(t *testing.T) {
		err := client.CreateSupplier(t.Context(), "   ")

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Informe o nome do fornecedor", rejection.Message)
	})
}

func TestServer_UserManagement(t *testing.T) {
	baseURL, store, _ := startBackend(t)
	admin := loginAs(t, baseURL, "LUCAS", "1234")
	creator := loginAs(t, baseURL, "MIGUEL", "1234")

	t.Run("requires_admin", func(t *testing.T) {
		err := creator.CreateUser(t.Context(), "NOVO", "1234", user.Creator)

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "permissao negada", rejection.Message)
	})

	t.Run("create_normalizes_username", func(t *testing.T) {
		require.NoError(t, admin.CreateUser(t.Context(), "  joana ", "1234", user.Approver))

		store.mu.Lock()
		account, ok := store.users["JOANA"]
		store.mu.Unlock()
		require.True(t, ok)
		assert.Equal(t, user.Approver, account.User.Role())
		assert.NotEqual(t, "1234", account.PasswordHash)
	})

	t.Run("duplicate_is_rejected", func(t *testing.T) {
		err := admin.CreateUser(t.Context(), "MIGUEL", "1234", user.Creator)

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Usuario ja existe", rejection.Message)
	})

	t.Run("self_delete_is_refused", func(t *testing.T) {
		err := admin.DeleteUser(t.Context(), "LUCAS")

		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Nao e possivel remover o proprio usuario", rejection.Message)
	})

	t.Run("delete_removes_account", func(t *testing.T) {
		require.NoError(t, admin.DeleteUser(t.Context(), "JOANA"))

		err := admin.DeleteUser(t.Context(), "JOANA")
		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Usuario nao encontrado", rejection.Message)
	})

	t.Run("change_password", func(t *testing.T) {
		err := creator.ChangePassword(t.Context(), "wrong", "nova")
		var rejection *errs.RemoteRejectionError
		require.ErrorAs(t, err, &rejection)
		assert.Equal(t, "Senha atual incorreta", rejection.Message)

		require.NoError(t, creator.ChangePassword(t.Context(), "1234", "nova"))

		fresh, err := restapi.NewClient(baseURL, 5*time.Second)
		require.NoError(t, err)
		_, err = fresh.Login(t.Context(), "MIGUEL", "nova")
		require.NoError(t, err)
	})
}
