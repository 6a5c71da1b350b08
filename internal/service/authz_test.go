package service

import (
	"testing"

	"funkdesk/backend/internal/model"
)

func TestAllowed_ManagementOnlyOperations(t *testing.T) {
	ops := []Operation{
		OpDecideAbsence,
		OpViewAllAbsences,
		OpExportAbsences,
		OpManageUsers,
		OpManageMaintenance,
	}
	otherRoles := []string{model.RoleAdmin, model.RoleDeveloper, model.RoleContent, "", "management"}

	for _, op := range ops {
		if !Allowed(op, model.RoleManagement) {
			t.Errorf("Management should be allowed %s", op)
		}
		for _, role := range otherRoles {
			if Allowed(op, role) {
				t.Errorf("role %q should not be allowed %s", role, op)
			}
		}
	}
}

func TestAllowed_UnknownOperation(t *testing.T) {
	if Allowed(Operation("does:not:exist"), model.RoleManagement) {
		t.Error("an unlisted operation must be denied for everyone")
	}
}

func TestPrincipal_Authenticated(t *testing.T) {
	if (Principal{}).Authenticated() {
		t.Error("empty principal must not count as authenticated")
	}
	if !(Principal{UserID: "u1"}).Authenticated() {
		t.Error("principal with a user id is authenticated")
	}
}
