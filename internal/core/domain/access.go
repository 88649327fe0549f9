package domain

// Actor is the (identity, role) pair a resolved session yields. Every report
// decision below is a total function of the actor's role and, for ownership
// checks, the report's assigned technician name.
type Actor struct {
	ID   string
	Name string
	Role string
}

// IsAdmin is true only for the admin role; unknown roles never qualify.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanSeeReport gates listing: admins see every report, technicians only the
// reports assigned to them.
func CanSeeReport(actor Actor, report *Report) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleTechnician:
		return report.TechnicianName == actor.Name
	}
	return false
}

// CanCreateReport allows both roles to file reports.
func CanCreateReport(actor Actor) bool {
	return KnownRole(actor.Role)
}

// CanEditReport allows admins to edit any report and technicians to edit
// only their own.
func CanEditReport(actor Actor, report *Report) bool {
	switch actor.Role {
	case RoleAdmin:
		return true
	case RoleTechnician:
		return report.TechnicianName == actor.Name
	}
	return false
}

// CanDeleteReport is admin-only, always denied for technicians.
func CanDeleteReport(actor Actor) bool {
	return actor.Role == RoleAdmin
}

// CanViewRoster gates the technician roster, admin-only.
func CanViewRoster(actor Actor) bool {
	return actor.Role == RoleAdmin
}

// AssignedTechnician resolves the technician name stored on a new report.
// A technician always files under their own name, whatever the request said,
// so nobody can claim work under a colleague's identity. Admins may assign
// freely.
func AssignedTechnician(actor Actor, requested string) string {
	if actor.Role == RoleTechnician {
		return actor.Name
	}
	return requested
}

// FilterReports returns the subset of reports the actor may see, preserving
// input order.
func FilterReports(actor Actor, reports []*Report) []*Report {
	visible := make([]*Report, 0, len(reports))
	for _, r := range reports {
		if CanSeeReport(actor, r) {
			visible = append(visible, r)
		}
	}
	return visible
}
