package account

type AccountDB struct {
	ID       int64
	Username string
	Password string
}
