package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	adapterhttp "pedidos/internal/adapters/in/http"
	"pedidos/internal/adapters/out/artifact"
	"pedidos/internal/adapters/out/postgres"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/ports"
	"pedidos/internal/jobs"
	"pedidos/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// pedidoRetention is how long orders are kept before the purge removes them.
const pedidoRetention = 135 * 24 * time.Hour

// CompositionRoot wires the order server: persistence, artifact generation,
// the HTTP adapter and the maintenance job.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	artifacts  *artifact.CSVGenerator
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) (CompositionRoot, error) {
	artifacts, err := artifact.NewCSVGenerator(config.ArtifactDir)
	if err != nil {
		return CompositionRoot{}, fmt.Errorf("create artifact generator: %w", err)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		artifacts:  artifacts,
	}, nil
}

func (c *CompositionRoot) CreateHTTPServer(purgedOnStart int64, logger *slog.Logger) *adapterhttp.Server {
	return adapterhttp.NewServer(c.uowFactory, c.artifacts, purgedOnStart, logger)
}

func (c *CompositionRoot) CreatePedidoPurgeJob(logger *slog.Logger) *jobs.PedidoPurgeJob {
	return jobs.NewPedidoPurgeJob(c.uowFactory, pedidoRetention, logger)
}

// SeedDefaultUsers ensures the default accounts exist so a fresh install is
// usable immediately. Existing accounts, including changed passwords, are
// left untouched.
func (c *CompositionRoot) SeedDefaultUsers(ctx context.Context) error {
	defaults := []struct {
		username string
		password string
		role     user.Role
	}{
		{"MIGUEL", "1234", user.Creator},
		{"MICHEL", "1234", user.Approver},
		{"LUCAS", "1234", user.Admin},
	}

	repo := c.uowFactory.Create().UserRepository()
	for _, d := range defaults {
		if _, err := repo.Get(ctx, d.username); err == nil {
			continue
		} else if !errors.Is(err, errs.ErrObjectNotFound) {
			return fmt.Errorf("look up default user %s: %w", d.username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		account, err := user.New(d.username, d.role)
		if err != nil {
			return err
		}
		if err = repo.Add(ctx, ports.Account{User: account, PasswordHash: string(hash)}); err != nil {
			return fmt.Errorf("seed default user %s: %w", d.username, err)
		}
	}
	return nil
}

// PurgeExpiredPedidos removes orders older than the retention window and
// returns how many were removed. Runs once at boot; the purge job repeats
// the sweep daily.
func (c *CompositionRoot) PurgeExpiredPedidos(ctx context.Context) (int64, error) {
	uow := c.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	removed, err := uow.PedidoRepository().DeleteOlderThan(ctx, time.Now().Add(-pedidoRetention))
	if err != nil {
		_ = uow.Rollback(ctx)
		return 0, err
	}
	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return removed, nil
}
