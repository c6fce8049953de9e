package service

import (
	"github.com/salva920/AlmacenRepuestos/internal/model"

	"github.com/shopspring/decimal"
)

// ConsumoLote is one lot consumption produced by a FIFO allocation: take
// Unidades from the lot, leaving NuevoStock remaining.
type ConsumoLote struct {
	Lote       model.Lote
	Unidades   int
	NuevoStock int
}

// AsignarLotesFIFO converts "sell cantidad units at precioVenta" into lot
// consumptions with FIFO cost basis. Lots must already be ordered by
// fecha_ingreso ascending (the repository guarantees this); only lots with
// remaining stock participate.
//
// For each lot, oldest first, it takes min(pendiente, lote.StockActual)
// units and accrues (precioVenta - lote.Precio) * unidades into the line's
// ganancia, which may be negative when the sale price is below a lot's cost.
//
// Returns the consumptions, the accumulated ganancia, and the shortfall:
// faltante > 0 means the lots cannot cover the request and the caller must
// abort without applying any consumption.
func AsignarLotesFIFO(lotes []model.Lote, cantidad int, precioVenta decimal.Decimal) (consumos []ConsumoLote, ganancia decimal.Decimal, faltante int) {
	pendiente := cantidad

	for _, lote := range lotes {
		if pendiente <= 0 {
			break
		}
		if lote.StockActual <= 0 {
			continue
		}

		unidades := pendiente
		if lote.StockActual < unidades {
			unidades = lote.StockActual
		}

		gananciaLote := precioVenta.Sub(lote.Precio).Mul(decimal.NewFromInt(int64(unidades)))
		ganancia = ganancia.Add(gananciaLote)

		consumos = append(consumos, ConsumoLote{
			Lote:       lote,
			Unidades:   unidades,
			NuevoStock: lote.StockActual - unidades,
		})
		pendiente -= unidades
	}

	return consumos, ganancia, pendiente
}
