package entity

// Roles reconocidos por el middleware RBAC.
const (
	RoleAdmin           = "ADMIN"
	RoleAdminNOC        = "ADMIN_NOC"
	RoleAdminMarketing  = "ADMIN_MARKETING"
	RoleAdminAccounting = "ADMIN_ACCOUNTING"
	RoleCPOOwner        = "CPO_OWNER"
	RoleUserDriver      = "USER_DRIVER"
)

// Estados de cuenta de usuario.
const (
	UserStatusActive   = "ACTIVE"
	UserStatusInactive = "INACTIVE"
)

// SubUserRoles roles asignables a un sub-administrador.
var SubUserRoles = []string{RoleAdminAccounting, RoleAdminMarketing, RoleAdminNOC}

// Privileges mapa de permisos (0/1) de un sub-administrador.
type Privileges struct {
	Reports          int
	CPOs             int
	Locations        int
	EVSEs            int
	CustomerService  int
	UserManagement   int
	AccountSettings  int
	RFIDUserAccounts int
	Topups           int
}

// SubUser sub-administrador a provisionar. PasswordHash ya viene con bcrypt.
type SubUser struct {
	Username     string
	PasswordHash string
	Role         string
	Privileges   Privileges
}
