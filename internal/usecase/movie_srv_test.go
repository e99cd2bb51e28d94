package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/Shwetaank/movies-booking-app/internal/data/entity"
	"github.com/Shwetaank/movies-booking-app/internal/data/repository"
	"github.com/Shwetaank/movies-booking-app/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeMovieRepo struct {
	mu     sync.Mutex
	movies map[uuid.UUID]*entity.Movie
	order  []uuid.UUID
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) Create(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = movie
	f.order = append(f.order, movie.ID)
	return nil
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.movies[id], nil
}

func (f *fakeMovieRepo) FindAll(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []*entity.Movie
	for _, id := range f.order {
		all = append(all, f.movies[id])
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeMovieRepo) CountAll(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.movies)), nil
}

func (f *fakeMovieRepo) Update(ctx context.Context, movie *entity.Movie) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.movies[movie.ID] = movie
	return nil
}

func (f *fakeMovieRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.movies[id]; !ok {
		return errNotFound(id)
	}
	delete(f.movies, id)
	for i, mid := range f.order {
		if mid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func errNotFound(id uuid.UUID) error {
	return &notFoundError{id: id}
}

type notFoundError struct{ id uuid.UUID }

func (e *notFoundError) Error() string { return "movie " + e.id.String() + " not found" }

func newTestMovieService(t *testing.T) (MovieService, *fakeMovieRepo) {
	t.Helper()

	repo := newFakeMovieRepo()
	svc := NewMovieService(&repository.Repository{Movie: repo}, zap.NewNop())
	return svc, repo
}

func movieReq(title string) *request.MovieRequest {
	return &request.MovieRequest{
		Title:             title,
		Genre:             []string{"Drama"},
		ReleaseDate:       "2024-03-15",
		DurationInMinutes: 120,
		Cast:              []string{"Lead", "Support"},
	}
}

func TestCreateAndGetMovie(t *testing.T) {
	svc, _ := newTestMovieService(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, movieReq("Dune"))
	require.NoError(t, err)
	assert.Equal(t, "Dune", created.Title)
	assert.Equal(t, "2024-03-15", created.ReleaseDate)

	got, err := svc.GetMovieByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, []string{"Drama"}, got.Genre)
}

func TestCreateMovieValidation(t *testing.T) {
	svc, repo := newTestMovieService(t)

	_, err := svc.CreateMovie(context.Background(), &request.MovieRequest{
		Title:       "",
		ReleaseDate: "not-a-date",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Empty(t, repo.movies)
}

func TestGetMovieByIDNotFound(t *testing.T) {
	svc, _ := newTestMovieService(t)

	_, err := svc.GetMovieByID(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUpdateMoviePartial(t *testing.T) {
	svc, _ := newTestMovieService(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, movieReq("Dune"))
	require.NoError(t, err)

	newTitle := "Dune: Part Two"
	featured := true
	updated, err := svc.UpdateMovie(ctx, created.ID, &request.MovieUpdateRequest{
		Title:    &newTitle,
		Featured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, newTitle, updated.Title)
	assert.True(t, updated.Featured)
	// Untouched fields survive a partial update
	assert.Equal(t, created.ReleaseDate, updated.ReleaseDate)
	assert.Equal(t, created.DurationInMinutes, updated.DurationInMinutes)
}

func TestDeleteMovie(t *testing.T) {
	svc, _ := newTestMovieService(t)
	ctx := context.Background()

	created, err := svc.CreateMovie(ctx, movieReq("Dune"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMovie(ctx, created.ID))

	_, err = svc.GetMovieByID(ctx, created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetMoviesPagination(t *testing.T) {
	svc, _ := newTestMovieService(t)
	ctx := context.Background()

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := svc.CreateMovie(ctx, movieReq(title))
		require.NoError(t, err)
	}

	page, err := svc.GetMovies(ctx, &request.PaginatedRequest{Page: 2, PerPage: 2})
	require.NoError(t, err)

	assert.Len(t, page.Data, 1)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
