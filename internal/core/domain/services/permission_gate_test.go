package services_test

import (
	"testing"
	"time"

	"pedidos/internal/core/domain/model/order"
	"pedidos/internal/core/domain/model/user"
	"pedidos/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestPermissionGate_AllowedActions(t *testing.T) {
	gate := services.NewPermissionGate()

	t.Run("creator_on_pendente", func(t *testing.T) {
		actions := gate.AllowedActions(user.Creator, order.Pendente)

		assert.True(t, actions.Contains(services.ActionView))
		assert.True(t, actions.Contains(services.ActionEdit))
		assert.False(t, actions.Contains(services.ActionApprove))
	})

	t.Run("approver_and_admin_may_approve_pendente", func(t *testing.T) {
		for _, role := range []user.Role{user.Approver, user.Admin} {
			actions := gate.AllowedActions(role, order.Pendente)

			assert.True(t, actions.Contains(services.ActionApprove), role.String())
			assert.True(t, actions.Contains(services.ActionEdit), role.String())
		}
	})

	t.Run("aprovado_allows_generate_for_all_known_roles", func(t *testing.T) {
		for _, role := range user.KnownRoles() {
			actions := gate.AllowedActions(role, order.Aprovado)

			assert.Equal(t,
				services.ActionSet{services.ActionView: true, services.ActionGenerate: true},
				actions, role.String())
		}
	})

	t.Run("gerado_adds_download", func(t *testing.T) {
		for _, role := range user.KnownRoles() {
			actions := gate.AllowedActions(role, order.Gerado)

			assert.True(t, actions.Contains(services.ActionDownload), role.String())
			assert.True(t, actions.Contains(services.ActionGenerate), role.String())
			assert.False(t, actions.Contains(services.ActionEdit), role.String())
		}
	})

	t.Run("unknown_role_gets_nothing", func(t *testing.T) {
		for _, status := range order.KnownStatuses() {
			assert.Empty(t, gate.AllowedActions(user.Role("auditor"), status), status.String())
		}
	})

	t.Run("unknown_status_gets_nothing", func(t *testing.T) {
		for _, role := range user.KnownRoles() {
			assert.Empty(t, gate.AllowedActions(role, order.Status("Arquivado")), role.String())
		}
	})

	t.Run("gate_is_total_over_role_status_combinations", func(t *testing.T) {
		roles := append(user.KnownRoles(), user.Role("auditor"), user.Role(""))
		statuses := append(order.KnownStatuses(), order.Status("Arquivado"), order.Status(""))

		for _, role := range roles {
			for _, status := range statuses {
				actions := gate.AllowedActions(role, status)
				assert.NotNil(t, actions, "%s/%s", role, status)
			}
		}
	})
}

func TestPermissionGate_AllowedActionsForOrder(t *testing.T) {
	gate := services.NewPermissionGate()

	t.Run("download_withheld_without_artifact", func(t *testing.T) {
		o := order.Restore(1, "ACME", "MIGUEL", time.Now(), order.Gerado, nil, "")

		actions := gate.AllowedActionsForOrder(user.Creator, o)

		assert.False(t, actions.Contains(services.ActionDownload))
		assert.True(t, actions.Contains(services.ActionGenerate))
	})

	t.Run("download_available_with_artifact", func(t *testing.T) {
		o := order.Restore(1, "ACME", "MIGUEL", time.Now(), order.Gerado, nil, "ACME_2025-03-14.csv")

		actions := gate.AllowedActionsForOrder(user.Creator, o)

		assert.True(t, actions.Contains(services.ActionDownload))
	})
}
