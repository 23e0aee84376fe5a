package model

type User struct {
	Identity
	accumulatedDebt int
	loans           []*Loan
}

func NewUser(id, name string) *User {
	return &User{Identity: Identity{ID: id, Name: name}}
}

// AddDebt adds a penalty to the running total. Callers pass positive amounts only.
func (u *User) AddDebt(amount int) {
	u.accumulatedDebt += amount
}

func (u *User) AccumulatedDebt() int {
	return u.accumulatedDebt
}

func (u *User) addLoan(loan *Loan) {
	u.loans = append(u.loans, loan)
}

// Loans returns the loan history in chronological order.
func (u *User) Loans() []*Loan {
	out := make([]*Loan, len(u.loans))
	copy(out, u.loans)
	return out
}

// OpenLoan finds the user's open loan of book, if any.
func (u *User) OpenLoan(book *Book) (*Loan, bool) {
	for _, loan := range u.loans {
		if loan.book == book && loan.IsOpen() {
			return loan, true
		}
	}
	return nil, false
}

func (u *User) View() UserView {
	return UserView{
		ID:              u.ID,
		Name:            u.Name,
		AccumulatedDebt: u.accumulatedDebt,
		LoanCount:       len(u.loans),
	}
}
