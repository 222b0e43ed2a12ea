package application

import (
	"time"

	"github.com/davicafu/mirtech-api/internal/order/domain"
)

// Ensamblado de DTOs: instantáneas de las filas con sus relaciones ya
// resueltas. Una relación ausente deja el campo en nil, nunca falla.

func newOrderSummaries(rows []domain.OrderRow) []domain.OrderSummary {
	summaries := make([]domain.OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, domain.OrderSummary{
			ID:        row.ID,
			UserID:    row.UserID,
			Username:  row.Username,
			CreatedAt: row.CreatedAt.Format(time.RFC3339),
		})
	}
	return summaries
}

func newOrderDetail(row *domain.OrderRow, txRows []domain.TransactionRow) *domain.OrderDetail {
	transactions := make([]domain.TransactionLine, 0, len(txRows))
	for _, tx := range txRows {
		transactions = append(transactions, domain.TransactionLine{
			ID:           tx.ID,
			OrderID:      tx.OrderID,
			ProductID:    tx.ProductID,
			Quantity:     tx.Quantity,
			TotalPrice:   tx.TotalPrice,
			ProductName:  tx.ProductName,
			ProductPrice: tx.ProductPrice,
		})
	}

	return &domain.OrderDetail{
		ID:           row.ID,
		UserID:       row.UserID,
		Username:     row.Username,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
		Transactions: transactions,
	}
}
