package service

import "funkdesk/backend/internal/model"

// Principal is the authenticated actor performing an operation. Every
// service operation receives it explicitly from the caller; nothing in this
// layer reads ambient session state.
type Principal struct {
	UserID string
	Role   string
}

// Authenticated reports whether the principal carries an identity.
func (p Principal) Authenticated() bool {
	return p.UserID != ""
}

// Operation names a privileged action for the authorization policy.
type Operation string

const (
	OpDecideAbsence     Operation = "absence:decide"
	OpViewAllAbsences   Operation = "absence:view_all"
	OpExportAbsences    Operation = "absence:export"
	OpManageUsers       Operation = "users:manage"
	OpManageMaintenance Operation = "maintenance:manage"
)

// policy is the single place that maps operations to the roles allowed to
// perform them. Services consult it through Allowed instead of comparing
// role strings inline.
var policy = map[Operation][]string{
	OpDecideAbsence:     {model.RoleManagement},
	OpViewAllAbsences:   {model.RoleManagement},
	OpExportAbsences:    {model.RoleManagement},
	OpManageUsers:       {model.RoleManagement},
	OpManageMaintenance: {model.RoleManagement},
}

// Allowed reports whether the role may perform the operation.
func Allowed(op Operation, role string) bool {
	for _, allowed := range policy[op] {
		if role == allowed {
			return true
		}
	}
	return false
}
