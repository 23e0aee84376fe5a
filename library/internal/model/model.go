package model

// Identity is the ID and display name shared by books, users and branches.
type Identity struct {
	ID   string
	Name string
}

type Book struct {
	Identity
	Author string
	loaned bool
}

func NewBook(id, title, author string) *Book {
	return &Book{
		Identity: Identity{ID: id, Name: title},
		Author:   author,
	}
}

func (b *Book) Title() string {
	return b.Name
}

func (b *Book) IsLoaned() bool {
	return b.loaned
}

func (b *Book) View() BookView {
	return BookView{
		ID:       b.ID,
		Title:    b.Name,
		Author:   b.Author,
		IsLoaned: b.loaned,
	}
}

type BookView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	IsLoaned bool   `json:"isLoaned"`
}

type BranchView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BookCount int    `json:"bookCount"`
}

type UserView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	AccumulatedDebt int    `json:"accumulatedDebt"`
	LoanCount       int    `json:"loanCount"`
}

type DebtView struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Debt     int    `json:"debt"`
}

type LoanView struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	BookID     string `json:"bookId"`
	Title      string `json:"title"`
	BranchID   string `json:"branchId"`
	BranchName string `json:"branchName"`
	LoanDate   Date   `json:"loanDate"`
	ReturnDate *Date  `json:"returnDate,omitempty"`
	Penalty    int    `json:"penalty"`
}

type UserLoansView struct {
	UserID   string     `json:"userId"`
	UserName string     `json:"userName"`
	Loans    []LoanView `json:"loans"`
}

type CreateBranchRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type CreateBookRequest struct {
	ID     string `json:"id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

type CreateUserRequest struct {
	ID   string `json:"id" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type LendRequest struct {
	UserID   string `json:"userId" validate:"required"`
	BookID   string `json:"bookId" validate:"required"`
	BranchID string `json:"branchId" validate:"required"`
	// LoanDate defaults to the current date.
	LoanDate string `json:"loanDate" validate:"omitempty,date"`
}

type ReturnRequest struct {
	UserID     string `json:"userId" validate:"required"`
	BookID     string `json:"bookId" validate:"required"`
	BranchID   string `json:"branchId" validate:"required"`
	ReturnDate string `json:"returnDate" validate:"required,date"`
}
