package service

import (
	"context"
	"sync"
	"time"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	libraryRepo "github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

// EventPublisher delivers loan events to subscribers.
type EventPublisher interface {
	Publish(ctx context.Context, key string, v any) error
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithPublisher(p EventPublisher) Option {
	return func(s *Service) {
		s.publisher = p
	}
}

// Service serializes access to the library directory; one lock guards the
// whole library.
type Service struct {
	mu        sync.RWMutex
	log       *zap.Logger
	repo      libraryRepo.Repository
	publisher EventPublisher
	now       func() time.Time
}

func NewService(repo libraryRepo.Repository, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:  log.Named("service"),
		repo: repo,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) AddBranch(_ context.Context, req model.CreateBranchRequest) model.BranchView {
	branch := model.NewBranch(req.ID, req.Name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.AddBranch(branch)
	return branch.View()
}

func (s *Service) AddBook(_ context.Context, branchID string, req model.CreateBookRequest) (model.BookView, error) {
	book := model.NewBook(req.ID, req.Title, req.Author)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.AddBook(branchID, book); err != nil {
		return model.BookView{}, err
	}
	return book.View(), nil
}

func (s *Service) AddUser(_ context.Context, req model.CreateUserRequest) model.UserView {
	user := model.NewUser(req.ID, req.Name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo.AddUser(user)
	return user.View()
}

// LendBook lends bookID from branchID to userID. A zero at means now.
func (s *Service) LendBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error) {
	if at.IsZero() {
		at = s.now()
	}

	s.mu.Lock()
	loan, err := s.repo.LendBook(userID, bookID, branchID, at)
	if err != nil {
		s.mu.Unlock()
		return model.LoanView{}, err
	}
	event := model.LoanEvent{
		Type:     model.LoanEventLent,
		Loan:     loan.View(),
		UserDebt: loan.User().AccumulatedDebt(),
	}
	s.mu.Unlock()

	s.log.Info("book lent",
		zap.String("loan", event.Loan.ID),
		zap.String("user", userID),
		zap.String("book", bookID),
		zap.String("branch", branchID))
	s.publish(ctx, userID, event)
	return event.Loan, nil
}

// ReturnBook returns bookID to branchID on the given date.
func (s *Service) ReturnBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error) {
	s.mu.Lock()
	loan, err := s.repo.ReturnBook(userID, bookID, branchID, at)
	if err != nil {
		s.mu.Unlock()
		return model.LoanView{}, err
	}
	event := model.LoanEvent{
		Type:     model.LoanEventReturned,
		Loan:     loan.View(),
		UserDebt: loan.User().AccumulatedDebt(),
	}
	s.mu.Unlock()

	s.log.Info("book returned",
		zap.String("loan", event.Loan.ID),
		zap.String("user", userID),
		zap.String("book", bookID),
		zap.String("branch", branchID),
		zap.Int("penalty", event.Loan.Penalty),
		zap.Int("debt", event.UserDebt))
	s.publish(ctx, userID, event)
	return event.Loan, nil
}

func (s *Service) ListBranches(_ context.Context) []model.BranchView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	branches := s.repo.Branches()
	out := make([]model.BranchView, 0, len(branches))
	for _, b := range branches {
		out = append(out, b.View())
	}
	return out
}

func (s *Service) ListUsers(_ context.Context) []model.UserView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := s.repo.Users()
	out := make([]model.UserView, 0, len(users))
	for _, u := range users {
		out = append(out, u.View())
	}
	return out
}

func (s *Service) AvailableBooks(_ context.Context, branchID string) ([]model.BookView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.repo.GetAvailableBooks(branchID)
	if err != nil {
		return nil, err
	}
	out := make([]model.BookView, 0, len(books))
	for _, b := range books {
		out = append(out, b.View())
	}
	return out, nil
}

func (s *Service) UserDebt(_ context.Context, userID string) (model.DebtView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	debt, err := s.repo.CalculatePenaltyByUser(userID)
	if err != nil {
		return model.DebtView{}, err
	}
	user, _ := s.repo.SearchUserByID(userID)
	return model.DebtView{UserID: user.ID, UserName: user.Name, Debt: debt}, nil
}

func (s *Service) AllDebts(_ context.Context) []model.DebtView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := s.repo.Users()
	out := make([]model.DebtView, 0, len(users))
	for _, u := range users {
		out = append(out, model.DebtView{UserID: u.ID, UserName: u.Name, Debt: u.AccumulatedDebt()})
	}
	return out
}

func (s *Service) UserLoans(_ context.Context, userID string) ([]model.LoanView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.repo.SearchUserByID(userID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "user %s", userID)
	}
	return loanViews(user), nil
}

func (s *Service) AllLoans(_ context.Context) []model.UserLoansView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := s.repo.Users()
	out := make([]model.UserLoansView, 0, len(users))
	for _, u := range users {
		out = append(out, model.UserLoansView{UserID: u.ID, UserName: u.Name, Loans: loanViews(u)})
	}
	return out
}

func (s *Service) publish(ctx context.Context, key string, event model.LoanEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, event); err != nil {
		s.log.Warn("publish loan event",
			zap.String("type", string(event.Type)),
			zap.String("loan", event.Loan.ID),
			zap.Error(err))
	}
}

func loanViews(user *model.User) []model.LoanView {
	loans := user.Loans()
	out := make([]model.LoanView, 0, len(loans))
	for _, l := range loans {
		out = append(out, l.View())
	}
	return out
}
