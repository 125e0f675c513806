package dto

// UserRes はユーザープロフィールのレスポンスDTOです。
// 外部にはPublicID（UUID）のみを公開し、DB主キーは出しません。
type UserRes struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IsPremium bool   `json:"is_premium"`
}

// LoginRes はログイン/登録成功時のレスポンスDTOです。
type LoginRes struct {
	Token     string  `json:"token"`
	SessionID string  `json:"session_id"`
	User      UserRes `json:"user"`
}

// LogoutReq は/logoutエンドポイントのリクエストボディを表します。
type LogoutReq struct {
	SessionID string `json:"session_id" binding:"required"`
}
