package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-lending/library/internal/errs"
	"github.com/Astemirdum/library-lending/library/internal/model"
	"github.com/Astemirdum/library-lending/library/internal/repository"
	"github.com/Astemirdum/library-lending/library/internal/service"
	service_mocks "github.com/Astemirdum/library-lending/library/internal/service/mocks"
)

var (
	jan1  = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	jan20 = time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC)
)

func newService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	log := zap.NewExample().Named("test")
	svc := service.NewService(repository.NewRepository(log), log, opts...)

	ctx := context.Background()
	svc.AddBranch(ctx, model.CreateBranchRequest{ID: "B1", Name: "Central"})
	_, err := svc.AddBook(ctx, "B1", model.CreateBookRequest{ID: "K1", Title: "Clean Code", Author: "R. Martin"})
	require.NoError(t, err)
	svc.AddUser(ctx, model.CreateUserRequest{ID: "U1", Name: "Ana"})
	return svc
}

func TestService_LendAndReturn(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	publisher := service_mocks.NewMockEventPublisher(c)
	var events []model.LoanEvent
	publisher.EXPECT().
		Publish(gomock.Any(), "U1", gomock.AssignableToTypeOf(model.LoanEvent{})).
		DoAndReturn(func(_ context.Context, _ string, v any) error {
			events = append(events, v.(model.LoanEvent))
			return nil
		}).
		Times(2)

	svc := newService(t,
		service.WithPublisher(publisher),
		service.WithClock(func() time.Time { return jan1 }),
	)

	lent, err := svc.LendBook(ctx, "U1", "K1", "B1", time.Time{})
	require.NoError(t, err)
	require.Equal(t, jan1, lent.LoanDate.Time)
	require.Nil(t, lent.ReturnDate)

	available, err := svc.AvailableBooks(ctx, "B1")
	require.NoError(t, err)
	require.Empty(t, available)

	returned, err := svc.ReturnBook(ctx, "U1", "K1", "B1", jan20)
	require.NoError(t, err)
	require.Equal(t, lent.ID, returned.ID)
	require.Equal(t, 40, returned.Penalty)
	require.NotNil(t, returned.ReturnDate)

	debt, err := svc.UserDebt(ctx, "U1")
	require.NoError(t, err)
	require.Equal(t, model.DebtView{UserID: "U1", UserName: "Ana", Debt: 40}, debt)

	available, err = svc.AvailableBooks(ctx, "B1")
	require.NoError(t, err)
	require.Equal(t, []model.BookView{{ID: "K1", Title: "Clean Code", Author: "R. Martin"}}, available)

	require.Len(t, events, 2)
	require.Equal(t, model.LoanEventLent, events[0].Type)
	require.Zero(t, events[0].UserDebt)
	require.Equal(t, model.LoanEventReturned, events[1].Type)
	require.Equal(t, 40, events[1].UserDebt)

	loans, err := svc.UserLoans(ctx, "U1")
	require.NoError(t, err)
	require.Len(t, loans, 1)
	require.Equal(t, "Clean Code", loans[0].Title)
	require.Equal(t, "Central", loans[0].BranchName)
}

func TestService_publishFailureKeepsLoan(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()

	publisher := service_mocks.NewMockEventPublisher(c)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	svc := newService(t, service.WithPublisher(publisher))
	_, err := svc.LendBook(ctx, "U1", "K1", "B1", jan1)
	require.NoError(t, err)

	users := svc.ListUsers(ctx)
	require.Equal(t, []model.UserView{{ID: "U1", Name: "Ana", LoanCount: 1}}, users)
}

func TestService_failuresDoNotPublish(t *testing.T) {
	ctx := context.Background()
	c := gomock.NewController(t)
	defer c.Finish()
	publisher := service_mocks.NewMockEventPublisher(c)

	svc := newService(t, service.WithPublisher(publisher))

	_, err := svc.LendBook(ctx, "U1", "K9", "B1", jan1)
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.ReturnBook(ctx, "U1", "K1", "B1", jan20)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	_, err = svc.UserDebt(ctx, "U9")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.UserLoans(ctx, "U9")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.AvailableBooks(ctx, "B9")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = svc.AddBook(ctx, "B9", model.CreateBookRequest{ID: "K2", Title: "t", Author: "a"})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestService_listings(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	svc.AddBranch(ctx, model.CreateBranchRequest{ID: "B2", Name: "North"})
	svc.AddUser(ctx, model.CreateUserRequest{ID: "U2", Name: "Bo"})

	_, err := svc.LendBook(ctx, "U2", "K1", "B1", jan1)
	require.NoError(t, err)
	_, err = svc.ReturnBook(ctx, "U2", "K1", "B2", jan1.AddDate(0, 0, 30))
	require.NoError(t, err)

	require.Equal(t, []model.BranchView{
		{ID: "B1", Name: "Central", BookCount: 0},
		{ID: "B2", Name: "North", BookCount: 1},
	}, svc.ListBranches(ctx))

	require.Equal(t, []model.DebtView{
		{UserID: "U1", UserName: "Ana", Debt: 0},
		{UserID: "U2", UserName: "Bo", Debt: 150},
	}, svc.AllDebts(ctx))

	all := svc.AllLoans(ctx)
	require.Len(t, all, 2)
	require.Empty(t, all[0].Loans)
	require.Len(t, all[1].Loans, 1)
	require.Equal(t, "B1", all[1].Loans[0].BranchID)
}

func TestService_concurrentLendOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	const users = 16
	for i := 0; i < users; i++ {
		svc.AddUser(ctx, model.CreateUserRequest{ID: string(rune('a' + i)), Name: "reader"})
	}

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		failed  []error
	)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.LendBook(ctx, id, "K1", "B1", jan1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
				return
			}
			failed = append(failed, err)
		}(string(rune('a' + i)))
	}
	wg.Wait()
	require.Equal(t, 1, success)
	require.Len(t, failed, users-1)
	for _, err := range failed {
		require.ErrorIs(t, err, errs.ErrInvalidState)
	}
}
