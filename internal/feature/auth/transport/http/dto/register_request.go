package dto

// RegisterReq は/registerエンドポイントのリクエストボディを表します。
// Ginのbindingタグでバリデーションします（必須、メール形式、パスワード長）。
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
