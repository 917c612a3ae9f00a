package resident

import "testing"

func TestHasRole(t *testing.T) {
	res := &Resident{
		Name:  "Eduardo",
		Roles: []Role{RoleParkingPayer},
	}

	if !res.HasRole(RoleParkingPayer) {
		t.Error("expected resident to hold parking_payer role")
	}
	if res.HasRole(RoleSuppliesReimbursed) {
		t.Error("did not expect resident to hold supplies_reimbursed role")
	}

	empty := &Resident{Name: "Lucas"}
	if empty.HasRole(RoleParkingPayer) {
		t.Error("resident without roles should hold none")
	}
}

func TestParseRoles(t *testing.T) {
	roles, err := parseRoles([]string{"parking_payer", "supplies_reimbursed"})
	if err != nil {
		t.Fatalf("parseRoles returned error: %v", err)
	}
	if len(roles) != 2 || roles[0] != RoleParkingPayer || roles[1] != RoleSuppliesReimbursed {
		t.Errorf("parseRoles = %v, want both known roles", roles)
	}

	if _, err := parseRoles([]string{"treasurer"}); err != ErrInvalidRole {
		t.Errorf("parseRoles with unknown role = %v, want ErrInvalidRole", err)
	}
}
