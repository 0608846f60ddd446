package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nextgenxp/nextgenxp-backend/internal/projects/domain"
	"github.com/nextgenxp/nextgenxp-backend/internal/projects/repository"
)

func emptyService() (*ProjectService, *repository.MemoryStore) {
	store := repository.NewMemoryStore(&domain.Document{Projects: []domain.Project{}})
	return NewProjectService(store), store
}

func mustParse(t *testing.T, body string) domain.Project {
	t.Helper()
	p, err := domain.ParseProject([]byte(body))
	require.NoError(t, err)
	return p
}

type failingStore struct {
	loadErr error
	saveErr error
}

func (f failingStore) Load(context.Context) (*domain.Document, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return domain.DefaultDocument(), nil
}

func (f failingStore) Save(context.Context, *domain.Document) error {
	return f.saveErr
}

func TestProjectService_ListDefaults(t *testing.T) {
	svc := NewProjectService(repository.NewMemoryStore(nil))

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "proj1", items[0].ID())
	assert.Equal(t, "proj2", items[1].ID())
}

func TestProjectService_Get(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repository.NewMemoryStore(nil))

	for _, id := range []string{"proj1", "proj2"} {
		p, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
	}

	_, err := svc.Get(ctx, "doesnotexist")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_CreateRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := emptyService()

	created, err := svc.Create(ctx, mustParse(t,
		`{"id":"client-id","name":"X","description":"Y","flowchart":{"nodes":[{"id":"a"}],"edges":[]},"color":"blue"}`))
	require.NoError(t, err)
	assert.Equal(t, "proj1", created.ID(), "client supplied id is discarded")

	got, err := svc.Get(ctx, created.ID())
	require.NoError(t, err)
	assert.JSONEq(t, `"X"`, string(got["name"]))
	assert.JSONEq(t, `"Y"`, string(got["description"]))
	assert.JSONEq(t, `{"nodes":[{"id":"a"}],"edges":[]}`, string(got.Flowchart()))
	assert.JSONEq(t, `"blue"`, string(got["color"]))
}

func TestProjectService_CreateAttachesDefaultFlowchart(t *testing.T) {
	svc := NewProjectService(repository.NewMemoryStore(nil))

	created, err := svc.Create(context.Background(), mustParse(t, `{"name":"X","description":"Y"}`))
	require.NoError(t, err)
	assert.Equal(t, "proj3", created.ID())

	var fc domain.Flowchart
	require.NoError(t, json.Unmarshal(created.Flowchart(), &fc))
	assert.Len(t, fc.Nodes, 1)
	assert.NotNil(t, fc.Edges)
	assert.Empty(t, fc.Edges)
}

func TestProjectService_CreateKeepsExplicitNullFlowchart(t *testing.T) {
	svc, _ := emptyService()

	created, err := svc.Create(context.Background(), mustParse(t, `{"name":"X","flowchart":null}`))
	require.NoError(t, err)
	assert.Equal(t, "null", string(created.Flowchart()))
}

func TestProjectService_CreateSequentialIDs(t *testing.T) {
	ctx := context.Background()
	svc, store := emptyService()

	for i := 1; i <= 5; i++ {
		created, err := svc.Create(ctx, mustParse(t, `{"name":"p"}`))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("proj%d", i), created.ID())
	}
	assert.Equal(t, 5, store.Saves())

	items, err := svc.List(ctx)
	require.NoError(t, err)
	for i, p := range items {
		assert.Equal(t, fmt.Sprintf("proj%d", i+1), p.ID(), "document order follows creation order")
	}
}

func TestProjectService_CreateRejectsNil(t *testing.T) {
	svc, store := emptyService()

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidBody)
	assert.Equal(t, 0, store.Saves())
}

func TestProjectService_ReplaceFlowchart(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore(nil)
	svc := NewProjectService(store)
	payload := json.RawMessage(`{"nodes":[],"edges":[]}`)

	require.NoError(t, svc.ReplaceFlowchart(ctx, "proj1", payload))
	first, err := svc.Get(ctx, "proj1")
	require.NoError(t, err)

	require.NoError(t, svc.ReplaceFlowchart(ctx, "proj1", payload))
	second, err := svc.Get(ctx, "proj1")
	require.NoError(t, err)

	assert.JSONEq(t, string(payload), string(first.Flowchart()))
	assert.JSONEq(t, string(first.Flowchart()), string(second.Flowchart()))
	assert.Equal(t, 2, store.Saves())

	other, err := svc.Get(ctx, "proj2")
	require.NoError(t, err)
	assert.NotEqual(t, string(payload), string(other.Flowchart()), "other projects are untouched")
}

func TestProjectService_ReplaceFlowchartIsOpaque(t *testing.T) {
	ctx := context.Background()
	svc := NewProjectService(repository.NewMemoryStore(nil))

	for _, body := range []string{`{"anything":true}`, `[1,2,3]`, `"text"`, `null`} {
		require.NoError(t, svc.ReplaceFlowchart(ctx, "proj2", json.RawMessage(body)))
		p, err := svc.Get(ctx, "proj2")
		require.NoError(t, err)
		assert.JSONEq(t, body, string(p.Flowchart()))
	}
}

func TestProjectService_ReplaceFlowchartNotFound(t *testing.T) {
	svc, store := emptyService()

	err := svc.ReplaceFlowchart(context.Background(), "doesnotexist", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, store.Saves())
}

func TestProjectService_ReplaceFlowchartNotFoundBeforeBodyCheck(t *testing.T) {
	svc, _ := emptyService()

	err := svc.ReplaceFlowchart(context.Background(), "doesnotexist", json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectService_ReplaceFlowchartInvalidBody(t *testing.T) {
	store := repository.NewMemoryStore(nil)
	svc := NewProjectService(store)

	err := svc.ReplaceFlowchart(context.Background(), "proj1", json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, domain.ErrInvalidBody)
	assert.Equal(t, 0, store.Saves())
}

func TestProjectService_StoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk on fire")

	svc := NewProjectService(failingStore{loadErr: boom})
	_, err := svc.List(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.Get(ctx, "proj1")
	assert.ErrorIs(t, err, boom)
	_, err = svc.Create(ctx, domain.Project{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.ReplaceFlowchart(ctx, "proj1", json.RawMessage(`{}`)), boom)

	svc = NewProjectService(failingStore{saveErr: boom})
	_, err = svc.Create(ctx, domain.Project{})
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, svc.ReplaceFlowchart(ctx, "proj1", json.RawMessage(`{}`)), boom)
}

func TestProjectService_ConcurrentCreatesAreNotLost(t *testing.T) {
	ctx := context.Background()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "data.json"))
	svc := NewProjectService(store)

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Create(ctx, domain.Project{"name": json.RawMessage(`"c"`)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	items, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, n+2)

	seen := make(map[string]bool, len(items))
	for _, p := range items {
		assert.False(t, seen[p.ID()], "duplicate id %s", p.ID())
		seen[p.ID()] = true
	}
}
