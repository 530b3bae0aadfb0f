package service

import (
	"log/slog"

	"github.com/hance08/concil/internal/gateway"
	"github.com/hance08/concil/internal/store"
)

type Service struct {
	Reconcile *ReconcileService
	Runs      *RunService
}

func NewService(repo store.Repository, logger *slog.Logger, gateways ...gateway.Gateway) *Service {
	return &Service{
		Reconcile: NewReconcileService(repo, logger, gateways...),
		Runs:      NewRunService(repo),
	}
}
