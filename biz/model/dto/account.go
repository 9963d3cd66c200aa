package dto

type CreateUserReq struct {
	Name     string `json:"name" validate:"required,max=60"`
	Password string `json:"password" validate:"required,max=128"`
}

// CredentialReq carries the wire shape of a name/password pair. The
// password field is named pswd on the wire for update payloads.
type CredentialReq struct {
	Name     string `json:"name" validate:"required,max=60"`
	Password string `json:"pswd" validate:"required,max=128"`
}

type UpdateUserReq struct {
	OldUser CredentialReq `json:"oldUser"`
	NewUser CredentialReq `json:"newUser"`
}

type AccountResp struct {
	Name string `json:"name"`
	Salt string `json:"salt"`
	Hash string `json:"hash"`
}
