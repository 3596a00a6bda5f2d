// Package permission define el motor de permisos tipados: cada rol resuelve
// a un conjunto de permisos con nombre, y cada endpoint declara el permiso que
// exige como constante verificada en compilación.
package permission

import "github.com/jhoicas/Gestion-api/internal/domain/entity"

// Permission es una capacidad con nombre exigible por un endpoint.
type Permission string

// Permisos del sistema.
const (
	PartiesRead    Permission = "parties:read"
	PartiesWrite   Permission = "parties:write"
	CatalogRead    Permission = "catalog:read"
	CatalogWrite   Permission = "catalog:write"
	OrdersRead     Permission = "orders:read"
	OrdersWrite    Permission = "orders:write"
	OrdersReadOwn  Permission = "orders:read_own"
	BillingRead    Permission = "billing:read"
	BillingWrite   Permission = "billing:write"
	BillingReadOwn Permission = "billing:read_own"
	DashboardView  Permission = "dashboard:view"
	AuditRead      Permission = "audit:read"
	AccountsManage Permission = "accounts:manage"
)

// rolePermissions resuelve cada rol a su conjunto de permisos.
// Solo finanzas y admin escriben facturas/pagos; los clientes únicamente
// consultan sus propias órdenes y facturas.
var rolePermissions = map[string][]Permission{
	entity.RoleAdmin: {
		PartiesRead, PartiesWrite, CatalogRead, CatalogWrite,
		OrdersRead, OrdersWrite, BillingRead, BillingWrite,
		DashboardView, AuditRead, AccountsManage,
	},
	entity.RoleFinanzas: {
		PartiesRead, CatalogRead, OrdersRead,
		BillingRead, BillingWrite, DashboardView,
	},
	entity.RoleVentas: {
		PartiesRead, PartiesWrite, CatalogRead,
		OrdersRead, OrdersWrite, BillingRead, DashboardView,
	},
	entity.RoleOperaciones: {
		PartiesRead, CatalogRead, OrdersRead, OrdersWrite,
	},
	entity.RoleCliente: {
		CatalogRead, OrdersReadOwn, BillingReadOwn,
	},
}

// ForRole devuelve el conjunto de permisos del rol; vacío si el rol es desconocido.
func ForRole(role string) []Permission {
	return rolePermissions[role]
}

// RoleHas indica si el rol posee el permiso.
func RoleHas(role string, p Permission) bool {
	for _, have := range rolePermissions[role] {
		if have == p {
			return true
		}
	}
	return false
}

// RoleHasAny indica si el rol posee al menos uno de los permisos.
func RoleHasAny(role string, perms ...Permission) bool {
	for _, p := range perms {
		if RoleHas(role, p) {
			return true
		}
	}
	return false
}
