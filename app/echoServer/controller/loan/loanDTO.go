package loan

type CreateLoanReq struct {
	BookID string `json:"book_id" validate:"required"`
	UserID string `json:"user_id" validate:"required"`
}
