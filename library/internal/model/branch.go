package model

import (
	"time"

	"github.com/pkg/errors"

	"github.com/Astemirdum/library-lending/library/internal/errs"
)

// Branch owns the books in its collection. A book is in at most one branch.
type Branch struct {
	Identity
	books []*Book
}

func NewBranch(id, name string) *Branch {
	return &Branch{Identity: Identity{ID: id, Name: name}}
}

// AddBook appends book without checking for a duplicate ID.
func (b *Branch) AddBook(book *Book) {
	b.books = append(b.books, book)
}

func (b *Branch) SearchBookByID(id string) (*Book, bool) {
	for _, book := range b.books {
		if book.ID == id {
			return book, true
		}
	}
	return nil, false
}

func (b *Branch) Books() []*Book {
	out := make([]*Book, len(b.books))
	copy(out, b.books)
	return out
}

func (b *Branch) AvailableBooks() []*Book {
	out := make([]*Book, 0, len(b.books))
	for _, book := range b.books {
		if !book.loaned {
			out = append(out, book)
		}
	}
	return out
}

// LoanBook lends the book with bookID to user, dating the loan at.
func (b *Branch) LoanBook(user *User, bookID string, at time.Time) (*Loan, error) {
	book, ok := b.SearchBookByID(bookID)
	if !ok {
		return nil, errors.Wrapf(errs.ErrNotFound, "book %s in branch %s", bookID, b.ID)
	}
	if book.loaned {
		return nil, errors.Wrapf(errs.ErrInvalidState, "book %s is already loaned", bookID)
	}
	loan := newLoan(user, book, b, at)
	book.loaned = true
	user.addLoan(loan)
	return loan, nil
}

// ReturnBook closes user's open loan of book and moves the book into this
// branch, which may differ from the lending branch. A positive penalty is
// added to the user's debt. Nothing changes when an error is returned.
func (b *Branch) ReturnBook(user *User, book *Book, at time.Time) (*Loan, error) {
	if book == nil {
		return nil, errors.Wrap(errs.ErrNotFound, "book")
	}
	if !book.loaned {
		return nil, errors.Wrapf(errs.ErrInvalidState, "book %s is not loaned", book.ID)
	}
	loan, ok := user.OpenLoan(book)
	if !ok {
		return nil, errors.Wrapf(errs.ErrInvalidState, "user %s has no open loan of book %s", user.ID, book.ID)
	}
	if err := loan.close(at); err != nil {
		return nil, err
	}
	if penalty := loan.Penalty(); penalty > 0 {
		user.AddDebt(penalty)
	}
	book.loaned = false
	loan.branch.removeBook(book)
	b.AddBook(book)
	return loan, nil
}

func (b *Branch) removeBook(book *Book) bool {
	if book == nil {
		return false
	}
	for i, candidate := range b.books {
		if candidate == book {
			b.books = append(b.books[:i], b.books[i+1:]...)
			return true
		}
	}
	return false
}

func (b *Branch) View() BranchView {
	return BranchView{
		ID:        b.ID,
		Name:      b.Name,
		BookCount: len(b.books),
	}
}
