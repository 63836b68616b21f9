package service

import (
	"context"
	"fmt"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
)

// bookService implements book.Service. It depends on the author repository
// to validate the authorID reference before touching the books table.
type bookService struct {
	repo    book.Repository
	authors author.Repository
}

func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest, callerID int64) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkAuthorExists(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &book.Book{
		AuthorID:        req.AuthorID,
		CreatedByUserID: callerID,
		Title:           req.Title,
		PublishYear:     req.PublishYear,
		Genre:           req.Genre,
	})
}

func (s *bookService) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, f book.Filter) ([]book.Book, error) {
	return s.repo.List(ctx, f)
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.BookRequest, callerID int64) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkAuthorExists(ctx, req.AuthorID); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ownership gates every mutating transition.
	if existing.CreatedByUserID != callerID {
		return nil, book.ErrNotOwnerEdit
	}

	existing.AuthorID = req.AuthorID
	existing.Title = req.Title
	existing.PublishYear = req.PublishYear
	existing.Genre = req.Genre

	return s.repo.Update(ctx, existing)
}

func (s *bookService) Delete(ctx context.Context, id int64, callerID int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if existing.CreatedByUserID != callerID {
		return book.ErrNotOwnerDelete
	}

	return s.repo.Delete(ctx, id)
}

func (s *bookService) checkAuthorExists(ctx context.Context, authorID int64) error {
	exists, err := s.authors.ExistsByID(ctx, authorID)
	if err != nil {
		return fmt.Errorf("check author exists: %w", err)
	}
	if !exists {
		return book.ErrAuthorMissing
	}
	return nil
}
