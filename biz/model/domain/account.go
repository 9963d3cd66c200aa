package domain

type Account struct {
	Name string
	Salt string
	Hash string
}

// Credential pairs a name with a plaintext password for verification
// and update requests. It is never persisted.
type Credential struct {
	Name     string
	Password string
}
