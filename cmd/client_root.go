package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"pedidos/internal/adapters/out/restapi"
	"pedidos/internal/core/application/usecases/commands"
	"pedidos/internal/core/application/usecases/queries"
	"pedidos/internal/core/domain/model/registry"
	"pedidos/internal/core/ports"
	"pedidos/internal/jobs"
)

// defaultRefreshSchedule refreshes the registry every 30 seconds when the
// environment does not override it.
const defaultRefreshSchedule = "*/30 * * * * *"

// requestTimeout bounds every call to the order server.
const requestTimeout = 30 * time.Second

// ClientRoot wires the client-side workflow: the REST client, the shared
// order registry and the command/query handlers an embedding UI consumes.
// The embedding program constructs it, starts the refresh job if it wants
// background polling, and calls the handlers from its event loop.
type ClientRoot struct {
	config   Config
	service  ports.OrderService
	registry *registry.Registry
}

func NewClientRoot(config Config) (ClientRoot, error) {
	client, err := restapi.NewClient(config.ServerURL, requestTimeout)
	if err != nil {
		return ClientRoot{}, fmt.Errorf("create order service client: %w", err)
	}

	return ClientRoot{
		config:   config,
		service:  client,
		registry: registry.New(),
	}, nil
}

// Registry returns the shared order registry the handlers write into.
func (c *ClientRoot) Registry() *registry.Registry {
	return c.registry
}

func (c *ClientRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.service)
}

func (c *ClientRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.service)
}

func (c *ClientRoot) CreateSubmitDraftCommandHandler() commands.SubmitDraftCommandHandler {
	return commands.NewSubmitDraftCommandHandler(c.service, c.CreateRefreshOrdersQueryHandler())
}

func (c *ClientRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.service, c.CreateRefreshOrdersQueryHandler())
}

func (c *ClientRoot) CreateGenerateOrderCommandHandler() commands.GenerateOrderCommandHandler {
	return commands.NewGenerateOrderCommandHandler(c.service, c.CreateRefreshOrdersQueryHandler())
}

func (c *ClientRoot) CreateSaveEditSessionCommandHandler() commands.SaveEditSessionCommandHandler {
	return commands.NewSaveEditSessionCommandHandler(c.service, c.CreateRefreshOrdersQueryHandler())
}

func (c *ClientRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	return commands.NewCreateSupplierCommandHandler(c.service)
}

func (c *ClientRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.service)
}

func (c *ClientRoot) CreateDeleteUserCommandHandler() commands.DeleteUserCommandHandler {
	return commands.NewDeleteUserCommandHandler(c.service)
}

func (c *ClientRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.service)
}

func (c *ClientRoot) CreateRefreshOrdersQueryHandler() queries.RefreshOrdersQueryHandler {
	return queries.NewRefreshOrdersQueryHandler(c.service, c.registry)
}

func (c *ClientRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.service)
}

func (c *ClientRoot) CreateOpenEditSessionQueryHandler() queries.OpenEditSessionQueryHandler {
	return queries.NewOpenEditSessionQueryHandler(c.service)
}

func (c *ClientRoot) CreateLoadContextQueryHandler() queries.LoadContextQueryHandler {
	return queries.NewLoadContextQueryHandler(c.service)
}

func (c *ClientRoot) CreateRegistryRefreshJob(logger *slog.Logger) *jobs.RegistryRefreshJob {
	schedule := c.config.RefreshSchedule
	if schedule == "" {
		schedule = defaultRefreshSchedule
	}
	return jobs.NewRegistryRefreshJob(c.CreateRefreshOrdersQueryHandler(), schedule, logger)
}
