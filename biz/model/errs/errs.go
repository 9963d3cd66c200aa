package errs

import "fmt"

// Kind tags every business failure. The transport layer maps kinds to
// HTTP statuses; the service layer branches on them for control flow.
type Kind string

const (
	KindDBError          Kind = "DB_ERROR"
	KindTransactionError Kind = "TRANSACTION_ERROR"
	KindUserCreation     Kind = "USER_CREATION"
	KindUserSearch       Kind = "USER_SEARCH"
	KindUserVerification Kind = "USER_VERIFICATION"
	KindPayloadParsing   Kind = "PAYLOAD_PARSING"
)

type Error interface {
	Error() string
	Kind() Kind
	Msg() string
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	kind Kind
	msg  string
}

func (bizErr *bizError) Error() string {
	return fmt.Sprintf("%s:%s", bizErr.kind, bizErr.msg)
}

func (bizErr *bizError) Kind() Kind {
	return bizErr.kind
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) SetErr(err error) Error {
	return New(bizErr.kind, err.Error())
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.kind, msg)
}

func New(kind Kind, msg string) Error {
	return &bizError{
		kind: kind,
		msg:  msg,
	}
}

// ErrorEqual compares by kind only; messages may carry per-call detail.
func ErrorEqual(err1, err2 Error) bool {
	if err1 == nil && err2 == nil {
		return true
	}
	if err1 == nil || err2 == nil {
		return false
	}
	return err1.Kind() == err2.Kind()
}

var (
	DBError          = New(KindDBError, "db error")
	TransactionError = New(KindTransactionError, "transaction error")

	UserCreation     = New(KindUserCreation, "user already exist")
	UserSearch       = New(KindUserSearch, "no such user")
	UserVerification = New(KindUserVerification, "wrong password")
	PayloadParsing   = New(KindPayloadParsing, "invalid payload")
)
