package repository

import (
	"context"

	"github.com/EmSanchezM/posweb-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrdenRepository is the data access contract for orders and their line
// items. The workflow creates the whole aggregate inside one transaction, so
// writes used by it take the tx instance; DB() lets the service open it.
type OrdenRepository interface {
	CrearTx(tx *gorm.DB, o *model.Orden) error
	// CrearDetallesTx batch-inserts all line items of an order in one statement.
	CrearDetallesTx(tx *gorm.DB, detalles []model.OrdenDetalle) error
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Orden, error)
	Listar(ctx context.Context) ([]model.Orden, error)
	Actualizar(ctx context.Context, o *model.Orden) error
	ActualizarEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error
	Desactivar(ctx context.Context, id uuid.UUID) error

	ObtenerDetallePorID(ctx context.Context, id uuid.UUID) (*model.OrdenDetalle, error)
	ListarDetalles(ctx context.Context) ([]model.OrdenDetalle, error)
	ListarDetallesPorOrden(ctx context.Context, ordenID uuid.UUID) ([]model.OrdenDetalle, error)
	CrearDetalle(ctx context.Context, d *model.OrdenDetalle) error
	ActualizarDetalle(ctx context.Context, d *model.OrdenDetalle) error
	DesactivarDetalle(ctx context.Context, id uuid.UUID) error

	DB() *gorm.DB
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) CrearTx(tx *gorm.DB, o *model.Orden) error {
	return tx.Create(o).Error
}

func (r *ordenRepo) CrearDetallesTx(tx *gorm.DB, detalles []model.OrdenDetalle) error {
	if len(detalles) == 0 {
		return nil
	}
	return tx.Create(&detalles).Error
}

func (r *ordenRepo) ObtenerPorID(ctx context.Context, id uuid.UUID) (*model.Orden, error) {
	var o model.Orden
	err := r.db.WithContext(ctx).
		Preload("Detalles").Preload("Detalles.Producto").Preload("Envio").
		First(&o, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ordenRepo) Listar(ctx context.Context) ([]model.Orden, error) {
	var ordenes []model.Orden
	err := r.db.WithContext(ctx).Preload("Detalles").
		Where("activo = true").Order("numero_orden ASC").Find(&ordenes).Error
	return ordenes, err
}

func (r *ordenRepo) Actualizar(ctx context.Context, o *model.Orden) error {
	return r.db.WithContext(ctx).Save(o).Error
}

func (r *ordenRepo) ActualizarEstadoTx(tx *gorm.DB, id uuid.UUID, estado string) error {
	return tx.Model(&model.Orden{}).Where("id = ?", id).Update("estado", estado).Error
}

func (r *ordenRepo) Desactivar(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Orden{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *ordenRepo) ObtenerDetallePorID(ctx context.Context, id uuid.UUID) (*model.OrdenDetalle, error) {
	var d model.OrdenDetalle
	err := r.db.WithContext(ctx).Preload("Producto").First(&d, "id = ? AND activo = true", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *ordenRepo) ListarDetalles(ctx context.Context) ([]model.OrdenDetalle, error) {
	var detalles []model.OrdenDetalle
	err := r.db.WithContext(ctx).Preload("Producto").Where("activo = true").Find(&detalles).Error
	return detalles, err
}

func (r *ordenRepo) ListarDetallesPorOrden(ctx context.Context, ordenID uuid.UUID) ([]model.OrdenDetalle, error) {
	var detalles []model.OrdenDetalle
	err := r.db.WithContext(ctx).Preload("Producto").
		Where("orden_id = ? AND activo = true", ordenID).Find(&detalles).Error
	return detalles, err
}

func (r *ordenRepo) CrearDetalle(ctx context.Context, d *model.OrdenDetalle) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *ordenRepo) ActualizarDetalle(ctx context.Context, d *model.OrdenDetalle) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *ordenRepo) DesactivarDetalle(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.OrdenDetalle{}).Where("id = ?", id).Update("activo", false).Error
}

func (r *ordenRepo) DB() *gorm.DB { return r.db }
