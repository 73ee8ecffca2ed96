package entities

type Role string

const (
	RoleUser          Role = "user"
	RoleAdministrator Role = "administrator"
)

func (r Role) String() string {
	return string(r)
}

// Account учетная запись в таблице users либо admins, в зависимости от роли.
// Уникальность username не гарантируется ни внутри роли, ни между ролями.
type Account struct {
	ID       int64
	Username string
	Password string
}

// Identity результат аутентификации: id вместе с ролью однозначно
// определяет вызывающего.
type Identity struct {
	ID   int64
	Role Role
}
