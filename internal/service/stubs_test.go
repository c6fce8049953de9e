package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/salva920/AlmacenRepuestos/internal/dto"
	"github.com/salva920/AlmacenRepuestos/internal/model"
	"github.com/salva920/AlmacenRepuestos/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var errStubNotFound = errors.New("not found")

// ── stubClienteRepo ───────────────────────────────────────────────────────────

type stubClienteRepo struct {
	clientes map[uuid.UUID]*model.Cliente
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errStubNotFound
	}
	return c, nil
}

func (r *stubClienteRepo) FindByCedula(_ context.Context, cedula string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Cedula == cedula {
			return c, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubClienteRepo) FindByEmail(_ context.Context, email string) (*model.Cliente, error) {
	for _, c := range r.clientes {
		if c.Email != nil && *c.Email == email {
			return c, nil
		}
	}
	return nil, errStubNotFound
}

func (r *stubClienteRepo) List(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)

// ── stubProductoRepo ──────────────────────────────────────────────────────────

type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	lotes     map[uuid.UUID]*model.Lote
	usados    map[uuid.UUID]bool // producto id → referenced by sales
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{
		productos: make(map[uuid.UUID]*model.Producto),
		lotes:     make(map[uuid.UUID]*model.Lote),
		usados:    make(map[uuid.UUID]bool),
	}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Producto, error) {
	p, ok := r.productos[id]
	if !ok {
		return nil, errStubNotFound
	}
	return p, nil
}

func (r *stubProductoRepo) FindByIDConLotes(ctx context.Context, id uuid.UUID) (*model.Producto, error) {
	p, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	copia := *p
	copia.Lotes = r.lotesDe(id, false)
	return &copia, nil
}

func (r *stubProductoRepo) List(_ context.Context, _ dto.ProductoFilter) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.productos, id)
	for lid, l := range r.lotes {
		if l.ProductoID == id {
			delete(r.lotes, lid)
		}
	}
	return nil
}

func (r *stubProductoRepo) UsadoEnVentas(_ context.Context, id uuid.UUID) (bool, error) {
	return r.usados[id], nil
}

func (r *stubProductoRepo) StockBajo(_ context.Context) ([]model.Producto, error) {
	var out []model.Producto
	for _, p := range r.productos {
		if p.Stock <= p.MinStock {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) FindByIDTx(_ *gorm.DB, id uuid.UUID) (*model.Producto, error) {
	return r.FindByID(context.Background(), id)
}

func (r *stubProductoRepo) CreateLote(_ context.Context, l *model.Lote) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	r.lotes[l.ID] = l
	return nil
}

func (r *stubProductoRepo) CreateLoteTx(_ *gorm.DB, l *model.Lote) error {
	return r.CreateLote(context.Background(), l)
}

func (r *stubProductoRepo) LotesDisponiblesTx(_ *gorm.DB, productoID uuid.UUID) ([]model.Lote, error) {
	return r.lotesDe(productoID, true), nil
}

func (r *stubProductoRepo) UpdateLoteStockTx(_ *gorm.DB, loteID uuid.UUID, stockActual int) error {
	l, ok := r.lotes[loteID]
	if !ok {
		return errStubNotFound
	}
	l.StockActual = stockActual
	return nil
}

func (r *stubProductoRepo) UpdateStockTx(_ *gorm.DB, id uuid.UUID, delta int) error {
	p, ok := r.productos[id]
	if !ok {
		return errStubNotFound
	}
	p.Stock += delta
	return nil
}

func (r *stubProductoRepo) DB() *gorm.DB { return nil }

func (r *stubProductoRepo) lotesDe(productoID uuid.UUID, soloDisponibles bool) []model.Lote {
	var out []model.Lote
	for _, l := range r.lotes {
		if l.ProductoID != productoID {
			continue
		}
		if soloDisponibles && l.StockActual <= 0 {
			continue
		}
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaIngreso.Before(out[j].FechaIngreso) })
	return out
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// ── stubVentaRepo ─────────────────────────────────────────────────────────────

type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateTx(_ *gorm.DB, v *model.Venta) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errStubNotFound
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context) ([]model.Venta, error) {
	out := make([]model.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVentaRepo) ListByCliente(_ context.Context, clienteID uuid.UUID) ([]model.Venta, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.ClienteID == clienteID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *stubVentaRepo) Update(_ context.Context, v *model.Venta) error {
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) VentasDiarias(_ context.Context, _, _ time.Time) ([]dto.VentaDiaria, error) {
	return nil, nil
}

func (r *stubVentaRepo) TopProductos(_ context.Context, _ int) ([]dto.TopProducto, error) {
	return nil, nil
}

func (r *stubVentaRepo) DB() *gorm.DB { return nil }

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// ── stubCajaRepo ──────────────────────────────────────────────────────────────

type stubCajaRepo struct {
	transacciones map[uuid.UUID]*model.TransaccionCaja
	seq           int64
}

func newStubCajaRepo() *stubCajaRepo {
	return &stubCajaRepo{transacciones: make(map[uuid.UUID]*model.TransaccionCaja)}
}

func (r *stubCajaRepo) Create(_ context.Context, t *model.TransaccionCaja) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.CreatedAt.IsZero() {
		r.seq++
		t.CreatedAt = time.Unix(0, r.seq)
	}
	r.transacciones[t.ID] = t
	return nil
}

func (r *stubCajaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.TransaccionCaja, error) {
	t, ok := r.transacciones[id]
	if !ok {
		return nil, errStubNotFound
	}
	return t, nil
}

func (r *stubCajaRepo) List(_ context.Context) ([]model.TransaccionCaja, error) {
	out := r.ordenadas()
	// newest first
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *stubCajaRepo) UltimaPorFecha(_ context.Context) (*model.TransaccionCaja, error) {
	ts := r.ordenadas()
	if len(ts) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	ultima := ts[len(ts)-1]
	return &ultima, nil
}

func (r *stubCajaRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.transacciones, id)
	return nil
}

func (r *stubCajaRepo) UltimaAnteriorTx(_ *gorm.DB, fecha, createdAt time.Time) (*model.TransaccionCaja, error) {
	var found *model.TransaccionCaja
	for _, t := range r.ordenadas() {
		if cajaAnterior(t, fecha, createdAt) {
			copia := t
			found = &copia
		}
	}
	if found == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return found, nil
}

func (r *stubCajaRepo) ListDesdeTx(_ *gorm.DB, fecha, createdAt time.Time) ([]model.TransaccionCaja, error) {
	var out []model.TransaccionCaja
	for _, t := range r.ordenadas() {
		if !cajaAnterior(t, fecha, createdAt) {
			out = append(out, t)
		}
	}
	return out, nil
}

// cajaAnterior reports whether t comes strictly before the (fecha, createdAt)
// ledger position.
func cajaAnterior(t model.TransaccionCaja, fecha, createdAt time.Time) bool {
	if !t.Fecha.Equal(fecha) {
		return t.Fecha.Before(fecha)
	}
	return t.CreatedAt.Before(createdAt)
}

func (r *stubCajaRepo) UpdateSaldoTx(_ *gorm.DB, id uuid.UUID, saldo decimal.Decimal) error {
	t, ok := r.transacciones[id]
	if !ok {
		return errStubNotFound
	}
	t.Saldo = saldo
	return nil
}

func (r *stubCajaRepo) SaldosPorMoneda(_ context.Context) ([]dto.SaldoCaja, error) {
	return nil, nil
}

func (r *stubCajaRepo) DB() *gorm.DB { return nil }

func (r *stubCajaRepo) ordenadas() []model.TransaccionCaja {
	out := make([]model.TransaccionCaja, 0, len(r.transacciones))
	for _, t := range r.transacciones {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Fecha.Equal(out[j].Fecha) {
			return out[i].Fecha.Before(out[j].Fecha)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

var _ repository.CajaRepository = (*stubCajaRepo)(nil)

// ── stubTasaRepo ──────────────────────────────────────────────────────────────

type stubTasaRepo struct {
	tasas []model.TasaCambio
}

func (r *stubTasaRepo) Create(_ context.Context, t *model.TasaCambio) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.tasas = append(r.tasas, *t)
	return nil
}

func (r *stubTasaRepo) Ultima(_ context.Context) (*model.TasaCambio, error) {
	if len(r.tasas) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	ultima := r.tasas[0]
	for _, t := range r.tasas[1:] {
		if t.Fecha.After(ultima.Fecha) {
			ultima = t
		}
	}
	return &ultima, nil
}

var _ repository.TasaCambioRepository = (*stubTasaRepo)(nil)
