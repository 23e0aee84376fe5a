package repository

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
)

// Repository is the library directory: the registry of branches and users
// that resolves IDs and delegates lending to the branch catalog.
// It is not safe for concurrent use.
type Repository interface {
	AddBranch(branch *model.Branch)
	AddUser(user *model.User)
	AddBook(branchID string, book *model.Book) error

	SearchBranchByID(branchID string) (*model.Branch, bool)
	SearchUserByID(userID string) (*model.User, bool)
	SearchBookByID(bookID string) (*model.Book, bool)

	Branches() []*model.Branch
	Users() []*model.User

	CalculatePenaltyByUser(userID string) (int, error)
	LendBook(userID, bookID, branchID string, at time.Time) (*model.Loan, error)
	ReturnBook(userID, bookID, branchID string, at time.Time) (*model.Loan, error)
	GetAvailableBooks(branchID string) ([]*model.Book, error)
}

type repository struct {
	branches []*model.Branch
	users    []*model.User
	log      *zap.Logger
}

func NewRepository(log *zap.Logger) *repository {
	return &repository{
		log: log.Named("repo"),
	}
}

func (r *repository) AddBranch(branch *model.Branch) {
	r.branches = append(r.branches, branch)
}

func (r *repository) AddUser(user *model.User) {
	r.users = append(r.users, user)
}

func (r *repository) AddBook(branchID string, book *model.Book) error {
	branch, ok := r.SearchBranchByID(branchID)
	if !ok {
		return errors.Wrapf(errs.ErrNotFound, "branch %s", branchID)
	}
	branch.AddBook(book)
	return nil
}

func (r *repository) SearchBranchByID(branchID string) (*model.Branch, bool) {
	for _, branch := range r.branches {
		if branch.ID == branchID {
			return branch, true
		}
	}
	return nil, false
}

func (r *repository) SearchUserByID(userID string) (*model.User, bool) {
	for _, user := range r.users {
		if user.ID == userID {
			return user, true
		}
	}
	return nil, false
}

// SearchBookByID scans branches in registration order.
func (r *repository) SearchBookByID(bookID string) (*model.Book, bool) {
	for _, branch := range r.branches {
		if book, ok := branch.SearchBookByID(bookID); ok {
			return book, true
		}
	}
	return nil, false
}

func (r *repository) Branches() []*model.Branch {
	out := make([]*model.Branch, len(r.branches))
	copy(out, r.branches)
	return out
}

func (r *repository) Users() []*model.User {
	out := make([]*model.User, len(r.users))
	copy(out, r.users)
	return out
}

func (r *repository) CalculatePenaltyByUser(userID string) (int, error) {
	user, ok := r.SearchUserByID(userID)
	if !ok {
		return 0, errors.Wrapf(errs.ErrNotFound, "user %s", userID)
	}
	return user.AccumulatedDebt(), nil
}

func (r *repository) LendBook(userID, bookID, branchID string, at time.Time) (*model.Loan, error) {
	user, ok := r.SearchUserByID(userID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "user %s", userID)
	}
	branch, ok := r.SearchBranchByID(branchID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "branch %s", branchID)
	}
	loan, err := branch.LoanBook(user, bookID, at)
	if err != nil {
		r.log.Debug("LendBook", zap.String("user", userID), zap.String("book", bookID), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// ReturnBook resolves the book library-wide, so it may be returned to any branch.
func (r *repository) ReturnBook(userID, bookID, branchID string, at time.Time) (*model.Loan, error) {
	user, ok := r.SearchUserByID(userID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "user %s", userID)
	}
	branch, ok := r.SearchBranchByID(branchID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "branch %s", branchID)
	}
	book, ok := r.SearchBookByID(bookID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "book %s", bookID)
	}
	loan, err := branch.ReturnBook(user, book, at)
	if err != nil {
		r.log.Debug("ReturnBook", zap.String("user", userID), zap.String("book", bookID), zap.Error(err))
		return nil, err
	}
	return loan, nil
}

func (r *repository) GetAvailableBooks(branchID string) ([]*model.Book, error) {
	branch, ok := r.SearchBranchByID(branchID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "branch %s", branchID)
	}
	return branch.AvailableBooks(), nil
}
