package dto

// PrivilegesRequest permisos de un sub-administrador; cada valor es 0 o 1.
type PrivilegesRequest struct {
	Reports          int `json:"reports" validate:"privilege"`
	CPOs             int `json:"cpos" validate:"privilege"`
	Locations        int `json:"locations" validate:"privilege"`
	EVSEs            int `json:"evses" validate:"privilege"`
	CustomerService  int `json:"customer_service" validate:"privilege"`
	UserManagement   int `json:"user_management" validate:"privilege"`
	AccountSettings  int `json:"account_settings" validate:"privilege"`
	RFIDUserAccounts int `json:"rfid_user_accounts" validate:"privilege"`
	Topups           int `json:"topups" validate:"privilege"`
}

// AddSubUserRequest cuerpo de POST /users/management.
type AddSubUserRequest struct {
	Username   string            `json:"username" validate:"required"`
	Password   string            `json:"password" validate:"required"`
	Role       string            `json:"role" validate:"required,oneof=ADMIN_ACCOUNTING ADMIN_MARKETING ADMIN_NOC"`
	Privileges PrivilegesRequest `json:"privileges"`
}
