package http

// Hand-written mocks for the repository interfaces. Each method
// delegates to an overridable func field.

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"locallibrary/internal/entity"
	"locallibrary/internal/usecase"

	"github.com/julienschmidt/httprouter"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newBody(s string) io.Reader { return strings.NewReader(s) }

// withParams attaches router path parameters to a test request.
func withParams(r *http.Request, params httprouter.Params) *http.Request {
	ctx := context.WithValue(r.Context(), httprouter.ParamsKey, params)
	return r.WithContext(ctx)
}

type mockBookRepo struct {
	ListFunc         func(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error)
	GetFunc          func(ctx context.Context, id string) (entity.Book, error)
	ListByAuthorFunc func(ctx context.Context, authorID string) ([]entity.Book, error)
	CreateFunc       func(ctx context.Context, book *entity.Book, genreIDs []string) error
	UpdateFunc       func(ctx context.Context, book *entity.Book, genreIDs []string) error
	DeleteFunc       func(ctx context.Context, id string) error
}

func (m *mockBookRepo) List(ctx context.Context, p usecase.ListParams) ([]entity.Book, int, error) {
	return m.ListFunc(ctx, p)
}

func (m *mockBookRepo) Get(ctx context.Context, id string) (entity.Book, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockBookRepo) ListByAuthor(ctx context.Context, authorID string) ([]entity.Book, error) {
	if m.ListByAuthorFunc == nil {
		return nil, nil
	}
	return m.ListByAuthorFunc(ctx, authorID)
}

func (m *mockBookRepo) Create(ctx context.Context, book *entity.Book, genreIDs []string) error {
	return m.CreateFunc(ctx, book, genreIDs)
}

func (m *mockBookRepo) Update(ctx context.Context, book *entity.Book, genreIDs []string) error {
	return m.UpdateFunc(ctx, book, genreIDs)
}

func (m *mockBookRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockAuthorRepo struct {
	ListFunc   func(ctx context.Context, limit, offset int) ([]entity.Author, int, error)
	GetFunc    func(ctx context.Context, id string) (entity.Author, error)
	CreateFunc func(ctx context.Context, author *entity.Author) error
	UpdateFunc func(ctx context.Context, author *entity.Author) error
	DeleteFunc func(ctx context.Context, id string) error
}

func (m *mockAuthorRepo) List(ctx context.Context, limit, offset int) ([]entity.Author, int, error) {
	return m.ListFunc(ctx, limit, offset)
}

func (m *mockAuthorRepo) Get(ctx context.Context, id string) (entity.Author, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockAuthorRepo) Create(ctx context.Context, author *entity.Author) error {
	return m.CreateFunc(ctx, author)
}

func (m *mockAuthorRepo) Update(ctx context.Context, author *entity.Author) error {
	return m.UpdateFunc(ctx, author)
}

func (m *mockAuthorRepo) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

type mockInstanceRepo struct {
	GetFunc              func(ctx context.Context, id string) (entity.BookInstance, error)
	CreateFunc           func(ctx context.Context, instance *entity.BookInstance) error
	ListByBookFunc       func(ctx context.Context, bookID string) ([]entity.BookInstance, error)
	ListLoanedToUserFunc func(ctx context.Context, userID string, limit, offset int) ([]entity.BookInstance, int, error)
	ListBorrowedFunc     func(ctx context.Context, limit, offset int) ([]entity.BookInstance, int, error)
	UpdateDueBackFunc    func(ctx context.Context, id string, dueBack time.Time) error
}

func (m *mockInstanceRepo) Get(ctx context.Context, id string) (entity.BookInstance, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockInstanceRepo) Create(ctx context.Context, instance *entity.BookInstance) error {
	return m.CreateFunc(ctx, instance)
}

func (m *mockInstanceRepo) ListByBook(ctx context.Context, bookID string) ([]entity.BookInstance, error) {
	if m.ListByBookFunc == nil {
		return nil, nil
	}
	return m.ListByBookFunc(ctx, bookID)
}

func (m *mockInstanceRepo) ListLoanedToUser(ctx context.Context, userID string, limit, offset int) ([]entity.BookInstance, int, error) {
	return m.ListLoanedToUserFunc(ctx, userID, limit, offset)
}

func (m *mockInstanceRepo) ListBorrowed(ctx context.Context, limit, offset int) ([]entity.BookInstance, int, error) {
	return m.ListBorrowedFunc(ctx, limit, offset)
}

func (m *mockInstanceRepo) UpdateDueBack(ctx context.Context, id string, dueBack time.Time) error {
	return m.UpdateDueBackFunc(ctx, id, dueBack)
}

type mockUserRepo struct {
	CreateFunc     func(ctx context.Context, user *entity.User) error
	GetByEmailFunc func(ctx context.Context, email string) (entity.User, error)
	GetByIDFunc    func(ctx context.Context, id string) (entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	return m.CreateFunc(ctx, user)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return m.GetByEmailFunc(ctx, email)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (entity.User, error) {
	return m.GetByIDFunc(ctx, id)
}

type mockSummaryRepo struct {
	CatalogCountsFunc func(ctx context.Context) (usecase.CatalogCounts, error)
}

func (m *mockSummaryRepo) CatalogCounts(ctx context.Context) (usecase.CatalogCounts, error) {
	return m.CatalogCountsFunc(ctx)
}

type mockSessionRepo struct {
	visits map[string]int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{visits: map[string]int{}}
}

func (m *mockSessionRepo) Visits(ctx context.Context, sessionID string) (int, error) {
	return m.visits[sessionID], nil
}

func (m *mockSessionRepo) SetVisits(ctx context.Context, sessionID string, visits int) error {
	m.visits[sessionID] = visits
	return nil
}

type mockGenreRepo struct {
	ListFunc   func(ctx context.Context) ([]entity.Genre, error)
	CreateFunc func(ctx context.Context, genre *entity.Genre) error
}

func (m *mockGenreRepo) List(ctx context.Context) ([]entity.Genre, error) {
	return m.ListFunc(ctx)
}

func (m *mockGenreRepo) Create(ctx context.Context, genre *entity.Genre) error {
	return m.CreateFunc(ctx, genre)
}

type mockLanguageRepo struct {
	ListFunc   func(ctx context.Context) ([]entity.Language, error)
	CreateFunc func(ctx context.Context, language *entity.Language) error
}

func (m *mockLanguageRepo) List(ctx context.Context) ([]entity.Language, error) {
	return m.ListFunc(ctx)
}

func (m *mockLanguageRepo) Create(ctx context.Context, language *entity.Language) error {
	return m.CreateFunc(ctx, language)
}
