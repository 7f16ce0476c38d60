package types

type MovementKind = string

var (
	KindEntrada MovementKind = "entrada"
	KindSaida   MovementKind = "saida"
)

type Role = string

var (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type OrderBy = string

var (
	OrderByAsc  OrderBy = "asc"
	OrderByDesc OrderBy = "desc"
)

// RosterOrder enumerates the orderings the roster views support.
type RosterOrder = string

var (
	RosterOrderNameAsc   RosterOrder = "nome_asc"
	RosterOrderNameDesc  RosterOrder = "nome_desc"
	RosterOrderSaldoDesc RosterOrder = "saldo_desc"
	RosterOrderSaldoAsc  RosterOrder = "saldo_asc"
)

// TurmaFilterAll and TurmaFilterNone are the non-id values accepted by
// turma filters: every turma, or students without one.
var (
	TurmaFilterAll  = "todas"
	TurmaFilterNone = "none"
)
