package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
)

const (
	// GracePeriodDays is the number of days a book may be kept without penalty.
	GracePeriodDays = 15
	// PenaltyPerDay is charged for every day past the grace period.
	PenaltyPerDay = 10

	day = 24 * time.Hour
)

// Loan records one book borrowed by one user from one branch.
// It is open until a return date is set, which happens exactly once.
type Loan struct {
	id           string
	user         *User
	book         *Book
	branch       *Branch
	dateOfLoan   time.Time
	dateOfReturn *time.Time
}

func newLoan(user *User, book *Book, branch *Branch, at time.Time) *Loan {
	return &Loan{
		id:         uuid.NewString(),
		user:       user,
		book:       book,
		branch:     branch,
		dateOfLoan: at,
	}
}

func (l *Loan) ID() string            { return l.id }
func (l *Loan) User() *User           { return l.user }
func (l *Loan) Book() *Book           { return l.book }
func (l *Loan) Branch() *Branch       { return l.branch }
func (l *Loan) DateOfLoan() time.Time { return l.dateOfLoan }

func (l *Loan) DateOfReturn() (time.Time, bool) {
	if l.dateOfReturn == nil {
		return time.Time{}, false
	}
	return *l.dateOfReturn, true
}

func (l *Loan) IsOpen() bool {
	return l.dateOfReturn == nil
}

// close stamps the return date. A return dated on a calendar day before the
// loan day is rejected; the same day is accepted whatever the time of day.
func (l *Loan) close(at time.Time) error {
	if !l.IsOpen() {
		return errors.Wrapf(errs.ErrInvalidState, "loan %s is already closed", l.id)
	}
	if calendarDay(at).Before(calendarDay(l.dateOfLoan)) {
		return errors.Wrapf(errs.ErrInvalidDate, "return date %s precedes loan date %s",
			at.Format(time.DateOnly), l.dateOfLoan.Format(time.DateOnly))
	}
	l.dateOfReturn = &at
	return nil
}

// DaysElapsed is the number of whole days between loan and return, truncated.
// It is zero while the loan is open.
func (l *Loan) DaysElapsed() int {
	if l.dateOfReturn == nil {
		return 0
	}
	return int(l.dateOfReturn.Sub(l.dateOfLoan) / day)
}

func (l *Loan) Penalty() int {
	if days := l.DaysElapsed(); days > GracePeriodDays {
		return (days - GracePeriodDays) * PenaltyPerDay
	}
	return 0
}

func (l *Loan) View() LoanView {
	v := LoanView{
		ID:         l.id,
		UserID:     l.user.ID,
		BookID:     l.book.ID,
		Title:      l.book.Name,
		BranchID:   l.branch.ID,
		BranchName: l.branch.Name,
		LoanDate:   Date{Time: l.dateOfLoan},
		Penalty:    l.Penalty(),
	}
	if l.dateOfReturn != nil {
		v.ReturnDate = &Date{Time: *l.dateOfReturn}
	}
	return v
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
