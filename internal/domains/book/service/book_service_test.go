package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
)

type stubBookRepo struct {
	books  map[int64]*book.Book
	nextID int64
}

func newStubBookRepo() *stubBookRepo {
	return &stubBookRepo{books: map[int64]*book.Book{}, nextID: 1}
}

func (r *stubBookRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	created := *b
	created.ID = r.nextID
	r.nextID++
	r.books[created.ID] = &created
	return &created, nil
}

func (r *stubBookRepo) GetByID(_ context.Context, id int64) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *stubBookRepo) List(_ context.Context, f book.Filter) ([]book.Book, error) {
	var out []book.Book
	for _, b := range r.books {
		if f.AuthorID != nil && b.AuthorID != *f.AuthorID {
			continue
		}
		if f.Genre != "" && b.Genre != f.Genre {
			continue
		}
		if f.MinYear != "" && b.PublishYear < f.MinYear {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookRepo) Update(_ context.Context, b *book.Book) (*book.Book, error) {
	if _, ok := r.books[b.ID]; !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	r.books[b.ID] = &copied
	return b, nil
}

func (r *stubBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

// stubAuthorRepo only needs ExistsByID for these tests.
type stubAuthorRepo struct {
	existing map[int64]bool
}

func (r *stubAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	return a, nil
}

func (r *stubAuthorRepo) GetByID(_ context.Context, _ int64) (*author.Author, error) {
	return nil, author.ErrAuthorNotFound
}

func (r *stubAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	return nil, nil
}

func (r *stubAuthorRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (r *stubAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	return r.existing[id], nil
}

func newTestService() (book.Service, *stubBookRepo) {
	repo := newStubBookRepo()
	authors := &stubAuthorRepo{existing: map[int64]bool{1: true}}
	return NewBookService(repo, authors), repo
}

func validRequest() *book.BookRequest {
	return &book.BookRequest{
		AuthorID:    1,
		Title:       "The Left Hand of Darkness",
		PublishYear: "1969",
		Genre:       "science fiction",
	}
}

func TestCreateStampsCreator(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.CreatedByUserID)
	assert.NotZero(t, created.ID)
}

func TestCreateUnknownAuthor(t *testing.T) {
	svc, _ := newTestService()

	req := validRequest()
	req.AuthorID = 99

	_, err := svc.Create(context.Background(), req, 42)
	assert.ErrorIs(t, err, book.ErrAuthorMissing)
}

func TestUpdateByOwner(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), 42)
	require.NoError(t, err)

	req := validRequest()
	req.Title = "The Dispossessed"
	req.PublishYear = "1974"

	updated, err := svc.Update(context.Background(), created.ID, req, 42)
	require.NoError(t, err)
	assert.Equal(t, "The Dispossessed", updated.Title)
	assert.Equal(t, "1974", updated.PublishYear)
	// The creator never changes on update.
	assert.Equal(t, int64(42), updated.CreatedByUserID)
}

func TestUpdateByNonOwner(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), 42)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, validRequest(), 7)
	assert.ErrorIs(t, err, book.ErrNotOwnerEdit)

	// Nothing changed.
	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, stored.Title)
}

func TestUpdateMissingBook(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Update(context.Background(), 999, validRequest(), 42)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestDeleteByNonOwner(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), 42)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), created.ID, 7)
	assert.ErrorIs(t, err, book.ErrNotOwnerDelete)

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.NoError(t, err)
}

func TestDeleteByOwner(t *testing.T) {
	svc, repo := newTestService()

	created, err := svc.Create(context.Background(), validRequest(), 42)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, 42))

	_, err = repo.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
