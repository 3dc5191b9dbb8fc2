package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/pm-tools/teampulse/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProjects struct {
	mock.Mock
}

func (m *mockProjects) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	args := m.Called(ctx, id)
	project, _ := args.Get(0).(*domain.Project)
	return project, args.Error(1)
}

func (m *mockProjects) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	projects, _ := args.Get(0).([]domain.Project)
	return projects, args.Error(1)
}

type mockSprints struct {
	mock.Mock
}

func (m *mockSprints) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	args := m.Called(ctx, id)
	sprint, _ := args.Get(0).(*domain.Sprint)
	return sprint, args.Error(1)
}

func (m *mockSprints) ListByProject(ctx context.Context, projectID string) ([]domain.Sprint, error) {
	args := m.Called(ctx, projectID)
	sprints, _ := args.Get(0).([]domain.Sprint)
	return sprints, args.Error(1)
}

type mockTasks struct {
	mock.Mock
}

func (m *mockTasks) ListByProject(ctx context.Context, projectID string) ([]domain.Task, error) {
	args := m.Called(ctx, projectID)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func (m *mockTasks) ListBySprint(ctx context.Context, sprintID string) ([]domain.Task, error) {
	args := m.Called(ctx, sprintID)
	tasks, _ := args.Get(0).([]domain.Task)
	return tasks, args.Error(1)
}

func TestDashboardPropagatesProjectFailure(t *testing.T) {
	projects := &mockProjects{}
	sprints := &mockSprints{}
	tasks := &mockTasks{}

	listed := []domain.Project{
		{ID: "p1", Name: "P1", Status: domain.ProjectActive},
		{ID: "p2", Name: "P2", Status: domain.ProjectActive},
	}
	projects.On("List", mock.Anything).Return(listed, nil)
	projects.On("GetByID", mock.Anything, "p1").
		Return(&listed[0], nil).Maybe()
	projects.On("GetByID", mock.Anything, "p2").
		Return(nil, errors.New("storage offline"))
	tasks.On("ListByProject", mock.Anything, mock.Anything).
		Return([]domain.Task{}, nil).Maybe()
	sprints.On("ListByProject", mock.Anything, mock.Anything).
		Return([]domain.Sprint{}, nil).Maybe()

	engine := NewEngine(Dependencies{
		Projects: projects,
		Sprints:  sprints,
		Tasks:    tasks,
	})

	_, err := engine.Dashboard(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "storage offline")
	projects.AssertExpectations(t)
}

func TestDashboardListFailure(t *testing.T) {
	projects := &mockProjects{}
	projects.On("List", mock.Anything).Return(nil, errors.New("list failed"))

	engine := NewEngine(Dependencies{Projects: projects})

	_, err := engine.Dashboard(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "list failed")
}
