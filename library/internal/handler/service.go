package handler

import (
	"context"
	"time"

	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type LendingService interface {
	AddBranch(ctx context.Context, req model.CreateBranchRequest) model.BranchView
	AddBook(ctx context.Context, branchID string, req model.CreateBookRequest) (model.BookView, error)
	AddUser(ctx context.Context, req model.CreateUserRequest) model.UserView

	LendBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error)
	ReturnBook(ctx context.Context, userID, bookID, branchID string, at time.Time) (model.LoanView, error)

	ListBranches(ctx context.Context) []model.BranchView
	ListUsers(ctx context.Context) []model.UserView
	AvailableBooks(ctx context.Context, branchID string) ([]model.BookView, error)
	UserDebt(ctx context.Context, userID string) (model.DebtView, error)
	AllDebts(ctx context.Context) []model.DebtView
	UserLoans(ctx context.Context, userID string) ([]model.LoanView, error)
	AllLoans(ctx context.Context) []model.UserLoansView
}

var _ LendingService = (*service.Service)(nil)
