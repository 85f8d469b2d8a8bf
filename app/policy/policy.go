// Package policy maps an authenticated role to the ledger operations it may
// perform. The table below is the whole authorization matrix; scope rules
// (own records only, assigned courses only) are enforced by the handlers on
// top of it, re-derived from current store state on every call.
package policy

import "github.com/James-Dyer/cse108-lab08/app/models"

// Operation identifies one ledger operation subject to authorization.
type Operation string

const (
	OpEnroll            Operation = "enroll"
	OpDrop              Operation = "drop"
	OpListOwnCourses    Operation = "list_own_courses"
	OpBrowseCatalog     Operation = "browse_catalog"
	OpViewCourseStatus  Operation = "view_course_status"
	OpViewRoster        Operation = "view_roster"
	OpSetGrade          Operation = "set_grade"
	OpListOwnTeaching   Operation = "list_own_teaching"
	OpManageUsers       Operation = "manage_users"
	OpManageCourses     Operation = "manage_courses"
	OpManageEnrollments Operation = "manage_enrollments"
	OpManageAssignments Operation = "manage_assignments"
)

// Operations lists every operation in the matrix.
var Operations = []Operation{
	OpEnroll, OpDrop, OpListOwnCourses, OpBrowseCatalog, OpViewCourseStatus,
	OpViewRoster, OpSetGrade, OpListOwnTeaching,
	OpManageUsers, OpManageCourses, OpManageEnrollments, OpManageAssignments,
}

// matrix is the closed (role, operation) permission table. Admin rows are
// filled in by Allowed: admins may do everything.
var matrix = map[models.Role]map[Operation]bool{
	models.RoleStudent: {
		OpEnroll:           true,
		OpDrop:             true,
		OpListOwnCourses:   true,
		OpBrowseCatalog:    true,
		OpViewCourseStatus: true,
	},
	models.RoleTeacher: {
		OpViewRoster:       true,
		OpSetGrade:         true,
		OpListOwnTeaching:  true,
		OpBrowseCatalog:    true,
		OpViewCourseStatus: true,
	},
}

// Allowed reports whether role may perform op at all. A false answer maps to
// ErrForbidden before any business rule runs.
func Allowed(role models.Role, op Operation) bool {
	if role == models.RoleAdmin {
		return role.Valid()
	}
	return matrix[role][op]
}

// Check returns ErrForbidden unless role may perform op.
func Check(role models.Role, op Operation) error {
	if !Allowed(role, op) {
		return models.ErrForbidden
	}
	return nil
}
