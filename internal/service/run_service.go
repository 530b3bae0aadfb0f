package service

import (
	"fmt"

	"github.com/hance08/concil/internal/model"
	"github.com/hance08/concil/internal/store"
)

type RunService struct {
	repo store.Repository
}

func NewRunService(repo store.Repository) *RunService {
	return &RunService{repo: repo}
}

// RunDetail is a run together with the rows it reconciled.
type RunDetail struct {
	Run   *model.Run
	Items []model.ReportRow
}

func (rs *RunService) ListRuns(limit int) ([]*model.Run, error) {
	runs, err := rs.repo.ListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// GetRun accepts a full id or an unambiguous prefix.
func (rs *RunService) GetRun(id string) (*RunDetail, error) {
	run, err := rs.repo.GetRun(id)
	if err != nil {
		return nil, err
	}

	items, err := rs.repo.GetRunItems(run.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load items of run %s: %w", run.ID, err)
	}

	return &RunDetail{Run: run, Items: items}, nil
}

// DeleteRun removes a run and its items. The id may be a prefix.
func (rs *RunService) DeleteRun(id string) (*model.Run, error) {
	run, err := rs.repo.GetRun(id)
	if err != nil {
		return nil, err
	}
	if err := rs.repo.DeleteRun(run.ID); err != nil {
		return nil, err
	}
	return run, nil
}
