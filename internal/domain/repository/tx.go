package repository

import "context"

// RepositoriosTx agrupa los repositorios ligados a una misma transacción.
type RepositoriosTx struct {
	Puestos   PuestoRepository
	Historial HistorialRepository
}

// TxRunner ejecuta fn dentro de una transacción: los repositorios que recibe
// fn escriben todos sobre la misma transacción. Si fn devuelve error se hace
// rollback; si no, commit.
type TxRunner interface {
	Run(ctx context.Context, fn func(RepositoriosTx) error) error
}
