package domain

import "testing"

func report(technician string) *Report {
	return &Report{
		Code:           "RPT-001",
		Title:          "Elevator inspection",
		TechnicianName: technician,
		Status:         StatusPending,
	}
}

func TestCanSeeReport(t *testing.T) {
	admin := Actor{Name: "Root", Role: RoleAdmin}
	ana := Actor{Name: "Ana", Role: RoleTechnician}

	if !CanSeeReport(admin, report("Pedro")) {
		t.Fatalf("admin must see every report")
	}
	if !CanSeeReport(ana, report("Ana")) {
		t.Fatalf("technician must see own report")
	}
	if CanSeeReport(ana, report("Pedro")) {
		t.Fatalf("technician must not see another technician's report")
	}
}

func TestCanSeeReport_UnknownRole(t *testing.T) {
	ghost := Actor{Name: "Ghost", Role: "superuser"}
	if CanSeeReport(ghost, report("Ghost")) {
		t.Fatalf("unknown role must be denied even with matching name")
	}
}

func TestCanEditReport(t *testing.T) {
	admin := Actor{Name: "Root", Role: RoleAdmin}
	maria := Actor{Name: "Maria", Role: RoleTechnician}

	if !CanEditReport(admin, report("Pedro")) {
		t.Fatalf("admin must edit any report")
	}
	if !CanEditReport(maria, report("Maria")) {
		t.Fatalf("technician must edit own report")
	}
	if CanEditReport(maria, report("Pedro")) {
		t.Fatalf("technician must not edit another technician's report")
	}
}

func TestCanDeleteReport(t *testing.T) {
	if !CanDeleteReport(Actor{Role: RoleAdmin}) {
		t.Fatalf("admin must delete reports")
	}
	if CanDeleteReport(Actor{Role: RoleTechnician}) {
		t.Fatalf("technician must never delete reports")
	}
	if CanDeleteReport(Actor{Role: "auditor"}) {
		t.Fatalf("unknown role must never delete reports")
	}
}

func TestCanViewRoster(t *testing.T) {
	if !CanViewRoster(Actor{Role: RoleAdmin}) {
		t.Fatalf("admin must view the roster")
	}
	if CanViewRoster(Actor{Role: RoleTechnician}) {
		t.Fatalf("technician must not view the roster")
	}
}

func TestAssignedTechnician(t *testing.T) {
	ana := Actor{Name: "Ana", Role: RoleTechnician}
	admin := Actor{Name: "Root", Role: RoleAdmin}

	// A technician cannot file work under a colleague's identity.
	if got := AssignedTechnician(ana, "Pedro"); got != "Ana" {
		t.Fatalf("expected self-assignment to Ana, got %q", got)
	}
	if got := AssignedTechnician(admin, "Pedro"); got != "Pedro" {
		t.Fatalf("admin assignment must pass through, got %q", got)
	}
}

func TestFilterReports(t *testing.T) {
	reports := []*Report{report("Ana"), report("Pedro"), report("Ana")}

	admin := Actor{Name: "Root", Role: RoleAdmin}
	if got := FilterReports(admin, reports); len(got) != 3 {
		t.Fatalf("admin expected 3 reports, got %d", len(got))
	}

	ana := Actor{Name: "Ana", Role: RoleTechnician}
	visible := FilterReports(ana, reports)
	if len(visible) != 2 {
		t.Fatalf("technician expected 2 reports, got %d", len(visible))
	}
	for _, r := range visible {
		if r.TechnicianName != "Ana" {
			t.Fatalf("leaked report assigned to %q", r.TechnicianName)
		}
	}
}

func TestKnownStatus(t *testing.T) {
	for _, s := range []ReportStatus{StatusPending, StatusInProgress, StatusCompleted} {
		if !KnownStatus(s) {
			t.Fatalf("expected %q to be known", s)
		}
	}
	if KnownStatus("archived") {
		t.Fatalf("unexpected status accepted")
	}
}
