// Package http exposes the order server's JSON API over echo. Handlers
// delegate business rules to the domain model and persistence to the unit of
// work; every rejection is returned as an {"error": msg} envelope with a
// user-facing Portuguese message.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
	"pedidos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// User-facing rejection messages. The client surfaces these verbatim, so
// their exact wording is part of the wire contract.
const (
	msgAuthRequired            = "autenticacao requerida"
	msgForbidden               = "permissao negada"
	msgBadCredentials          = "Usuario ou senha invalidos"
	msgRequestFailed           = "Falha ao processar a requisicao"
	msgSelectSupplier          = "Selecione um fornecedor"
	msgSupplierNameRequired    = "Informe o nome do fornecedor"
	msgSupplierExists          = "Fornecedor ja existe"
	msgSupplierNotFound        = "Fornecedor nao encontrado"
	msgPedidoNotFound          = "Pedido nao encontrado"
	msgOnlyPendingEditable     = "Somente pedidos pendentes podem ser alterados"
	msgAlreadyProcessed        = "Pedido ja foi processado"
	msgMustBeApproved          = "Pedido precisa estar aprovado para gerar arquivo"
	msgNoItems                 = "Pedido nao possui itens"
	msgArtifactNotFound        = "Arquivo nao encontrado"
	msgCreateFailed            = "Falha ao criar pedido"
	msgUpdateFailed            = "Falha ao atualizar pedido"
	msgApproveFailed           = "Falha ao aprovar pedido"
	msgGenerateFailed          = "Falha ao gerar arquivo"
	msgUserAndPasswordRequired = "Usuario e senha devem ser informados"
	msgUserExists              = "Usuario ja existe"
	msgUserNotFound            = "Usuario nao encontrado"
	msgInvalidRole             = "Perfil invalido"
	msgNoSelfDelete            = "Nao e possivel remover o proprio usuario"
	msgNewPasswordRequired     = "Informe a nova senha"
	msgWrongCurrentPassword    = "Senha atual incorreta"

	// warningArtifactFailed accompanies a successful approval whose
	// automatic artifact generation failed.
	warningArtifactFailed = "Pedido aprovado, mas houve erro ao gerar arquivo automaticamente."
)

// ctxUserKey is the echo context key holding the authenticated user.
const ctxUserKey = "user"

// errNoItems marks an artifact generation attempt on an order without items.
var errNoItems = errors.New("order has no items")

// Server implements the order API. It owns the in-memory session store;
// everything else is persisted through the unit of work.
type Server struct {
	uowFactory    ports.UnitOfWorkFactory
	artifacts     ports.ArtifactGenerator
	sessions      *sessionStore
	purgedOnStart int64
	log           *slog.Logger
}

// NewServer creates the HTTP server. purgedOnStart is the number of expired
// orders removed at boot, reported through /api/context.
func NewServer(
	uowFactory ports.UnitOfWorkFactory,
	artifacts ports.ArtifactGenerator,
	purgedOnStart int64,
	logger *slog.Logger,
) *Server {
	return &Server{
		uowFactory:    uowFactory,
		artifacts:     artifacts,
		sessions:      newSessionStore(sessionTTL),
		purgedOnStart: purgedOnStart,
		log:           logger.With("component", "http"),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance. Everything under
// /api requires a session; approval and account management are role-gated on
// top of that.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/login", s.Login)
	e.POST("/logout", s.Logout)

	api := e.Group("/api", s.requireSession)
	api.GET("/context", s.GetContext)

	api.GET("/fornecedores", s.ListSuppliers)
	api.POST("/fornecedores", s.CreateSupplier)

	api.GET("/pedidos", s.ListPedidos)
	api.POST("/pedidos", s.CreatePedido)
	api.GET("/pedidos/:id", s.GetPedido)
	api.PUT("/pedidos/:id", s.UpdatePedido)
	api.POST("/pedidos/:id/approve", s.ApprovePedido, s.requireRoles(user.Approver, user.Admin))
	api.POST("/pedidos/:id/generate", s.GeneratePedido)
	api.GET("/pedidos/:id/download", s.DownloadPedido)

	api.GET("/users", s.ListUsers, s.requireRoles(user.Admin))
	api.POST("/users", s.CreateUser, s.requireRoles(user.Admin))
	api.DELETE("/users/:username", s.DeleteUser, s.requireRoles(user.Admin))
	api.POST("/me/password", s.ChangePassword)
}

// requireSession resolves the session cookie and stores the authenticated
// user on the request context.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(sessionCookie)
		if err != nil {
			return jsonError(c, http.StatusUnauthorized, msgAuthRequired)
		}

		u, ok := s.sessions.Get(cookie.Value)
		if !ok {
			return jsonError(c, http.StatusUnauthorized, msgAuthRequired)
		}

		c.Set(ctxUserKey, u)
		return next(c)
	}
}

// requireRoles rejects sessions whose role is not in the allowed set.
func (s *Server) requireRoles(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := currentUser(c).Role()
			for _, allowed := range roles {
				if role == allowed {
					return next(c)
				}
			}
			return jsonError(c, http.StatusForbidden, msgForbidden)
		}
	}
}

// Login handles POST /login - authenticates and sets the session cookie.
func (s *Server) Login(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgBadCredentials)
	}

	username := user.NormalizeUsername(req.Username)
	if username == "" || req.Password == "" {
		return jsonError(c, http.StatusUnauthorized, msgBadCredentials)
	}

	uow := s.uowFactory.Create()
	account, err := uow.UserRepository().Get(c.Request().Context(), username)
	if err != nil {
		return jsonError(c, http.StatusUnauthorized, msgBadCredentials)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return jsonError(c, http.StatusUnauthorized, msgBadCredentials)
	}

	token := s.sessions.Create(account.User)
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(sessionTTL),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, map[string]any{"user": fromDomainUser(account.User)})
}

// Logout handles POST /logout - drops the session.
func (s *Server) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		s.sessions.Delete(cookie.Value)
	}
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.NoContent(http.StatusNoContent)
}

// GetContext handles GET /api/context - the bootstrap payload after login.
// The account list is included only for admins.
func (s *Server) GetContext(c echo.Context) error {
	ctx := c.Request().Context()
	u := currentUser(c)
	uow := s.uowFactory.Create()

	suppliers, err := uow.SupplierRepository().GetAll(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	statuses := make([]string, 0, len(order.KnownStatuses()))
	for _, status := range order.KnownStatuses() {
		statuses = append(statuses, status.String())
	}

	resp := struct {
		User             userDTO   `json:"user"`
		Suppliers        []string  `json:"suppliers"`
		Statuses         []string  `json:"statuses"`
		Users            []userDTO `json:"users,omitempty"`
		PurgedOnStart    int64     `json:"purged_on_start"`
		ModeloDisponivel bool      `json:"modelo_disponivel"`
	}{
		User:             fromDomainUser(u),
		Suppliers:        suppliers,
		Statuses:         statuses,
		PurgedOnStart:    s.purgedOnStart,
		ModeloDisponivel: true,
	}

	if u.Role().CanManageUsers() {
		accounts, err := uow.UserRepository().GetAll(ctx)
		if err != nil {
			return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
		}
		resp.Users = fromDomainAccounts(accounts)
	}

	return c.JSON(http.StatusOK, resp)
}

// ListSuppliers handles GET /api/fornecedores.
func (s *Server) ListSuppliers(c echo.Context) error {
	uow := s.uowFactory.Create()
	suppliers, err := uow.SupplierRepository().GetAll(c.Request().Context())
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"suppliers": suppliers})
}

// CreateSupplier handles POST /api/fornecedores.
func (s *Server) CreateSupplier(c echo.Context) error {
	var req struct {
		Nome string `json:"nome"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgSupplierNameRequired)
	}

	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return jsonError(c, http.StatusBadRequest, msgSupplierNameRequired)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()

	exists, err := uow.SupplierRepository().Exists(ctx, nome)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	if exists {
		return jsonError(c, http.StatusBadRequest, msgSupplierExists)
	}
	if err = uow.SupplierRepository().Add(ctx, nome); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	suppliers, err := uow.SupplierRepository().GetAll(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"supplier": nome, "suppliers": suppliers})
}

// ListPedidos handles GET /api/pedidos - order summaries, newest first,
// optionally narrowed by supplier and status.
func (s *Server) ListPedidos(c echo.Context) error {
	fornecedor := strings.TrimSpace(c.QueryParam("fornecedor"))
	status := order.Status(strings.TrimSpace(c.QueryParam("status")))

	uow := s.uowFactory.Create()
	orders, err := uow.PedidoRepository().GetAll(c.Request().Context(), fornecedor, status)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"pedidos": fromDomainPedidos(orders)})
}

// CreatePedido handles POST /api/pedidos - submits a new pending order.
func (s *Server) CreatePedido(c echo.Context) error {
	var req struct {
		Fornecedor string    `json:"fornecedor"`
		Itens      []itemDTO `json:"itens"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgRequestFailed)
	}

	fornecedor := strings.TrimSpace(req.Fornecedor)
	if fornecedor == "" {
		return jsonError(c, http.StatusBadRequest, msgSelectSupplier)
	}
	items, err := normalizeItems(req.Itens)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgCreateFailed)
	}

	exists, err := uow.SupplierRepository().Exists(ctx, fornecedor)
	if err != nil {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusInternalServerError, msgCreateFailed)
	}
	if !exists {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusBadRequest, msgSupplierNotFound)
	}

	pending := order.Restore(0, fornecedor, currentUser(c).Username(), time.Now(), order.Pendente, items, "")
	created, err := uow.PedidoRepository().Add(ctx, pending)
	if err != nil {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusInternalServerError, msgCreateFailed)
	}
	if err = uow.Commit(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgCreateFailed)
	}

	return c.JSON(http.StatusCreated, map[string]any{"pedido": fromDomainPedido(created)})
}

// GetPedido handles GET /api/pedidos/:id - one order with its full items.
func (s *Server) GetPedido(c echo.Context) error {
	id, err := pedidoID(c)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
	}

	uow := s.uowFactory.Create()
	o, err := uow.PedidoRepository().Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"pedido": fromDomainPedido(o)})
}

// UpdatePedido handles PUT /api/pedidos/:id - replaces a pending order's
// items wholesale.
func (s *Server) UpdatePedido(c echo.Context) error {
	id, err := pedidoID(c)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
	}

	var req struct {
		Itens []itemDTO `json:"itens"`
	}
	if err = c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgRequestFailed)
	}
	items, err := normalizeItems(req.Itens)
	if err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgUpdateFailed)
	}

	current, err := uow.PedidoRepository().Get(ctx, id)
	if err != nil {
		_ = uow.Rollback(ctx)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgUpdateFailed)
	}
	if !current.Status().CanEditItems() {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusBadRequest, msgOnlyPendingEditable)
	}

	updated := order.Restore(
		current.ID(),
		current.Fornecedor(),
		current.CreatedBy(),
		current.CreatedAt(),
		current.Status(),
		items,
		current.Artifact(),
	)
	if err = uow.PedidoRepository().Update(ctx, updated); err != nil {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusInternalServerError, msgUpdateFailed)
	}
	if err = uow.Commit(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgUpdateFailed)
	}

	return c.JSON(http.StatusOK, map[string]any{"pedido": fromDomainPedido(updated)})
}

// ApprovePedido handles POST /api/pedidos/:id/approve. Approval commits
// first; the artifact is then generated eagerly, and a generation failure
// downgrades to a warning on an otherwise successful response.
func (s *Server) ApprovePedido(c echo.Context) error {
	id, err := pedidoID(c)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgApproveFailed)
	}

	current, err := uow.PedidoRepository().Get(ctx, id)
	if err != nil {
		_ = uow.Rollback(ctx)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgApproveFailed)
	}

	status, err := current.Status().Approve()
	if err != nil {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusBadRequest, msgAlreadyProcessed)
	}

	approved := order.Restore(
		current.ID(),
		current.Fornecedor(),
		current.CreatedBy(),
		current.CreatedAt(),
		status,
		current.Items(),
		current.Artifact(),
	)
	if err = uow.PedidoRepository().Update(ctx, approved); err != nil {
		_ = uow.Rollback(ctx)
		return jsonError(c, http.StatusInternalServerError, msgApproveFailed)
	}
	if err = uow.Commit(ctx); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgApproveFailed)
	}

	generated, err := s.generateArtifact(ctx, approved)
	if err != nil {
		s.log.Warn("artifact generation after approval failed",
			"pedido_id", approved.ID(), "error", err)
		return c.JSON(http.StatusOK, map[string]any{
			"pedido":  fromDomainPedido(approved),
			"warning": warningArtifactFailed,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{"pedido": fromDomainPedido(generated)})
}

// GeneratePedido handles POST /api/pedidos/:id/generate - produces or
// re-produces the export artifact for an approved order.
func (s *Server) GeneratePedido(c echo.Context) error {
	id, err := pedidoID(c)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()
	current, err := uow.PedidoRepository().Get(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgGenerateFailed)
	}

	if err = current.Status().ValidateGenerate(); err != nil {
		return jsonError(c, http.StatusBadRequest, msgMustBeApproved)
	}

	generated, err := s.generateArtifact(ctx, current)
	if err != nil {
		if errors.Is(err, errNoItems) {
			return jsonError(c, http.StatusBadRequest, msgNoItems)
		}
		return jsonError(c, http.StatusInternalServerError, msgGenerateFailed)
	}

	return c.JSON(http.StatusOK, map[string]any{"pedido": fromDomainPedido(generated)})
}

// DownloadPedido handles GET /api/pedidos/:id/download - streams the export
// artifact as an attachment.
func (s *Server) DownloadPedido(c echo.Context) error {
	id, err := pedidoID(c)
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
	}

	uow := s.uowFactory.Create()
	o, err := uow.PedidoRepository().Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgPedidoNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	if !o.HasArtifact() {
		return jsonError(c, http.StatusNotFound, msgArtifactNotFound)
	}

	f, err := s.artifacts.Open(o.Artifact())
	if err != nil {
		return jsonError(c, http.StatusNotFound, msgArtifactNotFound)
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+o.Artifact()+`"`)
	return c.Stream(http.StatusOK, "text/csv", f)
}

// ListUsers handles GET /api/users. Admin only.
func (s *Server) ListUsers(c echo.Context) error {
	uow := s.uowFactory.Create()
	accounts, err := uow.UserRepository().GetAll(c.Request().Context())
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"users": fromDomainAccounts(accounts)})
}

// CreateUser handles POST /api/users. Admin only.
func (s *Server) CreateUser(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgUserAndPasswordRequired)
	}

	username := strings.TrimSpace(req.Username)
	password := strings.TrimSpace(req.Password)
	if username == "" || password == "" {
		return jsonError(c, http.StatusBadRequest, msgUserAndPasswordRequired)
	}
	role := strings.TrimSpace(req.Role)
	if role == "" {
		role = user.Creator.String()
	}

	account, err := user.New(username, user.Role(role))
	if err != nil {
		return jsonError(c, http.StatusBadRequest, msgInvalidRole)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()

	if _, err = uow.UserRepository().Get(ctx, account.Username()); err == nil {
		return jsonError(c, http.StatusBadRequest, msgUserExists)
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	if err = uow.UserRepository().Add(ctx, ports.Account{
		User:         account,
		PasswordHash: string(hash),
	}); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	accounts, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"users": fromDomainAccounts(accounts)})
}

// DeleteUser handles DELETE /api/users/:username. Admin only; an admin
// cannot remove their own account.
func (s *Server) DeleteUser(c echo.Context) error {
	username := user.NormalizeUsername(c.Param("username"))
	if username == currentUser(c).Username() {
		return jsonError(c, http.StatusBadRequest, msgNoSelfDelete)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()
	if err := uow.UserRepository().Delete(ctx, username); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(c, http.StatusNotFound, msgUserNotFound)
		}
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	accounts, err := uow.UserRepository().GetAll(ctx)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	return c.JSON(http.StatusOK, map[string]any{"users": fromDomainAccounts(accounts)})
}

// ChangePassword handles POST /api/me/password - replaces the session
// user's password after checking the current one.
func (s *Server) ChangePassword(c echo.Context) error {
	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}
	if err := c.Bind(&req); err != nil {
		return jsonError(c, http.StatusBadRequest, msgNewPasswordRequired)
	}

	newPassword := strings.TrimSpace(req.NewPassword)
	if newPassword == "" {
		return jsonError(c, http.StatusBadRequest, msgNewPasswordRequired)
	}

	ctx := c.Request().Context()
	uow := s.uowFactory.Create()

	account, err := uow.UserRepository().Get(ctx, currentUser(c).Username())
	if err != nil {
		return jsonError(c, http.StatusBadRequest, msgUserNotFound)
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return jsonError(c, http.StatusBadRequest, msgWrongCurrentPassword)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}
	if err = uow.UserRepository().UpdatePassword(ctx, account.User.Username(), string(hash)); err != nil {
		return jsonError(c, http.StatusInternalServerError, msgRequestFailed)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// generateArtifact produces the export file for the order, marks it Gerado
// and records the filename. The caller decides whether a failure is fatal.
func (s *Server) generateArtifact(ctx context.Context, o order.Order) (order.Order, error) {
	if len(o.Items()) == 0 {
		return order.Order{}, errNoItems
	}

	filename, err := s.artifacts.Generate(ctx, o)
	if err != nil {
		return order.Order{}, err
	}

	status, err := o.Status().Generate()
	if err != nil {
		return order.Order{}, err
	}

	generated := order.Restore(
		o.ID(),
		o.Fornecedor(),
		o.CreatedBy(),
		o.CreatedAt(),
		status,
		o.Items(),
		filename,
	)

	uow := s.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return order.Order{}, err
	}
	if err = uow.PedidoRepository().Update(ctx, generated); err != nil {
		_ = uow.Rollback(ctx)
		return order.Order{}, err
	}
	if err = uow.Commit(ctx); err != nil {
		return order.Order{}, err
	}

	return generated, nil
}

func currentUser(c echo.Context) user.User {
	u, _ := c.Get(ctxUserKey).(user.User)
	return u
}

func pedidoID(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("id"))
}

func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, errorDTO{Error: msg})
}

func fromDomainAccounts(accounts []ports.Account) []userDTO {
	dtos := make([]userDTO, len(accounts))
	for i, account := range accounts {
		dtos[i] = fromDomainUser(account.User)
	}
	return dtos
}
