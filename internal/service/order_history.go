package service

import (
	"sort"
	"strconv"
	"time"

	"mix-store/internal/model"
)

// Fields of the single line item that stands in for a remote order's contents.
const (
	summaryItemID   = "summary"
	summaryCartID   = "summary-item"
	summaryName     = "Order Summary"
	summaryBrand    = "Mixed"
	summaryCategory = "Order"
	summaryImage    = "https://placehold.co/100"
)

// RecordToOrder maps a flat remote row to an order with one summary line item.
func RecordToOrder(record model.OrderRecord, userID string) model.Order {
	name := record.SelectedProduct
	if name == "" {
		name = summaryName
	}

	return model.Order{
		ID:     strconv.FormatInt(record.ID, 10),
		UserID: userID,
		Items: []model.CartItem{{
			Product: model.Product{
				ID:       summaryItemID,
				Name:     name,
				Brand:    summaryBrand,
				Price:    record.TotalAmount,
				Images:   []string{summaryImage},
				Sizes:    []int{},
				Category: summaryCategory,
			},
			CartID:   summaryCartID,
			Quantity: 1,
		}},
		Total:  record.TotalAmount,
		Status: model.OrderStatusProcessing,
		Date:   formatDate(record.CreatedAt),
		ShippingAddress: &model.Address{
			Street: record.Address,
			City:   record.City,
			Zip:    record.ZipCode,
		},
	}
}

// MergeHistory combines local and remote orders by ID. A local order wins
// over a remote one with the same ID, remote-only orders are added and
// local-only orders are kept. The result is ordered newest first.
func MergeHistory(local, remote []model.Order) []model.Order {
	merged := make([]model.Order, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))

	for _, o := range local {
		seen[o.ID] = struct{}{}
		merged = append(merged, o)
	}
	for _, o := range remote {
		if _, ok := seen[o.ID]; ok {
			continue
		}
		seen[o.ID] = struct{}{}
		merged = append(merged, o)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return orderTime(merged[i]).After(orderTime(merged[j]))
	})

	return merged
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// orderTime parses an order date; unparseable dates sort last.
func orderTime(o model.Order) time.Time {
	t, err := time.Parse(time.RFC3339Nano, o.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
