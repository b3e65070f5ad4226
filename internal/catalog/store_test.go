package catalog_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"alcyxob/exercise-catalog/internal/catalog"
	"alcyxob/exercise-catalog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestStore_Uninitialized(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := catalog.NewStore(catalog.NewMockLoader(ctrl))

	assert.False(t, store.Initialized())
	assert.Empty(t, store.Search(domain.SearchFilter{}))
	assert.NotNil(t, store.Search(domain.SearchFilter{SearchTerm: "squat"}))
	assert.Empty(t, store.Facets().Categories)
	assert.Equal(t, 0, store.Status().Count)
}

func TestStore_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "mongo", nil)

	store := catalog.NewStore(loader)
	status, err := store.Load(context.Background())
	require.NoError(t, err)

	assert.True(t, status.Initialized)
	assert.Equal(t, "mongo", status.Source)
	assert.Equal(t, len(testCatalog()), status.Count)
	assert.NotEmpty(t, status.Version)
	assert.True(t, store.Initialized())
	assert.Equal(t, testCatalog(), store.Exercises())
	assert.Equal(t, catalog.ExtractFacets(testCatalog()), store.Facets())
	assert.Equal(t, []string{"Push-up"}, names(store.Search(domain.SearchFilter{SearchTerm: "push"})))
}

func TestStore_FailedReloadKeepsStaleCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "mongo", nil),
		loader.EXPECT().Load(gomock.Any()).Return(nil, "", catalog.ErrCatalogUnavailable),
	)

	store := catalog.NewStore(loader)
	first, err := store.Load(context.Background())
	require.NoError(t, err)

	second, err := store.Load(context.Background())
	require.ErrorIs(t, err, catalog.ErrCatalogUnavailable)
	assert.Equal(t, first, second)
	assert.Len(t, store.Exercises(), len(testCatalog()))
}

func TestStore_FailedFirstLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(nil, "", errors.New("boom"))

	store := catalog.NewStore(loader)
	status, err := store.Load(context.Background())
	require.Error(t, err)
	assert.False(t, status.Initialized)
	assert.False(t, store.Initialized())
	assert.Empty(t, store.Search(domain.SearchFilter{}))
}

func TestStore_ReloadChangesVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "mongo", nil).Times(2)

	store := catalog.NewStore(loader)
	first, err := store.Load(context.Background())
	require.NoError(t, err)
	second, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first.Version, second.Version)
}

func TestStore_ConcurrentLoadsShareOneFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)

	release := make(chan struct{})
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Exercise, string, error) {
		<-release
		return testCatalog(), "mongo", nil
	}).Times(1)

	store := catalog.NewStore(loader)

	var started, wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		started.Add(1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			started.Done()
			_, err := store.Load(context.Background())
			assert.NoError(t, err)
		}()
	}
	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.True(t, store.Initialized())
}

func TestStore_FindByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "mongo", nil)

	store := catalog.NewStore(loader)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	ex, ok := store.FindByName("  bench press ")
	require.True(t, ok)
	assert.Equal(t, "Bench Press", ex.Name)

	_, ok = store.FindByName("bench")
	assert.False(t, ok)
}

func TestStore_RunRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)

	loaded := make(chan struct{}, 10)
	loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(context.Context) ([]domain.Exercise, string, error) {
		loaded <- struct{}{}
		return testCatalog(), "mongo", nil
	}).MinTimes(2)

	store := catalog.NewStore(loader)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		store.RunRefresh(ctx, 5*time.Millisecond)
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-loaded:
		case <-time.After(2 * time.Second):
			t.Fatal("catalog was not refreshed")
		}
	}
	cancel()
	<-done

	assert.True(t, store.Initialized())
}

func TestStore_RunRefreshDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := catalog.NewStore(catalog.NewMockLoader(ctrl))
	// returns immediately without a ticker
	store.RunRefresh(context.Background(), 0)
}

func TestStore_ObserversSeeEveryLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "file:data/exercises.json", nil),
		loader.EXPECT().Load(gomock.Any()).Return(nil, "", catalog.ErrCatalogUnavailable),
	)

	type event struct {
		source string
		count  int
		err    error
	}
	var events []event
	store := catalog.NewStore(loader)
	store.Observe(func(status catalog.Status, err error) {
		events = append(events, event{source: status.Source, count: status.Count, err: err})
	})

	_, err := store.Load(context.Background())
	require.NoError(t, err)
	_, err = store.Load(context.Background())
	require.Error(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, event{source: "file:data/exercises.json", count: len(testCatalog())}, events[0])
	assert.Equal(t, "file:data/exercises.json", events[1].source, "a failed load reports the stale catalog")
	assert.ErrorIs(t, events[1].err, catalog.ErrCatalogUnavailable)
}

func TestStore_ResultsDoNotShareCatalogData(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := catalog.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(testCatalog(), "mongo", nil)

	store := catalog.NewStore(loader)
	_, err := store.Load(context.Background())
	require.NoError(t, err)

	found, ok := store.FindByName("Bench Press")
	require.True(t, ok)
	found.Equipment[0] = "changed"
	found.PrimaryMuscles = append(found.PrimaryMuscles[:0], "changed")

	matches := store.Search(domain.SearchFilter{SearchTerm: "bench press"})
	require.NotEmpty(t, matches)
	matches[0].Equipment[0] = "changed"

	all := store.Exercises()
	all[0].PrimaryMuscles[0] = "changed"

	facets := store.Facets()
	facets.Categories[0] = "changed"

	assert.Equal(t, testCatalog(), store.Exercises())
	assert.Equal(t, catalog.ExtractFacets(testCatalog()), store.Facets())
}
