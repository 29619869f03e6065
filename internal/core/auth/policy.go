package auth

import "github.com/tarefalabs/tarefas-api/internal/core/domain"

// Operation enumerates every gated action in the system. Ownership-scoped
// actions appear as separate "own"/"other" rows; the caller picks the row by
// comparing the acting subject to the resource owner.
type Operation string

const (
	OpTaskListAll  Operation = "task:list_all"
	OpTaskListOwn  Operation = "task:list_own"
	OpTaskCreate   Operation = "task:create"
	OpTaskUpdate   Operation = "task:update"
	OpTaskDelete   Operation = "task:delete"
	OpUserListAll  Operation = "user:list_all"
	OpUserReadSelf Operation = "user:read_self"
	OpUserReadAny  Operation = "user:read_any"
	OpUserEditSelf Operation = "user:edit_self"
	OpUserEditRole Operation = "user:edit_own_role"
	OpUserEditAny  Operation = "user:edit_any"
	OpUserDelete   Operation = "user:delete"
)

// grants is the fixed access table. Loaded once, never mutated, safe for
// unsynchronized concurrent reads. Absence means deny.
var grants = map[Operation]map[domain.Role]bool{
	OpTaskListAll:  {domain.RoleAdmin: true, domain.RoleManager: true, domain.RoleViewer: true},
	OpTaskListOwn:  {domain.RoleAdmin: true, domain.RoleManager: true, domain.RoleViewer: true},
	OpTaskCreate:   {domain.RoleAdmin: true, domain.RoleManager: true},
	OpTaskUpdate:   {domain.RoleAdmin: true, domain.RoleManager: true},
	OpTaskDelete:   {domain.RoleAdmin: true},
	OpUserListAll:  {domain.RoleAdmin: true},
	OpUserReadSelf: {domain.RoleAdmin: true, domain.RoleManager: true, domain.RoleViewer: true},
	OpUserReadAny:  {domain.RoleAdmin: true},
	OpUserEditSelf: {domain.RoleAdmin: true, domain.RoleManager: true, domain.RoleViewer: true},
	OpUserEditRole: {domain.RoleAdmin: true},
	OpUserEditAny:  {domain.RoleAdmin: true},
	OpUserDelete:   {domain.RoleAdmin: true},
}

// Permit reports whether role may perform op. Pure table lookup; unknown
// roles and unknown operations are denied.
func Permit(role domain.Role, op Operation) bool {
	return grants[op][role]
}
