package ws

import (
	"encoding/json"
	"testing"

	"go-enterprise-ops/internal/model"
)

func TestPublishStockUpdateNeverBlocks(t *testing.T) {
	h := NewHub()
	product := model.ProductResponse{ProductID: "p-1", ProductName: "Widget"}

	// More events than the broadcast buffer holds, with no Run loop draining
	// it. Overflow must be dropped, not block the ledger.
	for i := 0; i < 100; i++ {
		h.PublishStockUpdate(product, "ADD", 1, "1111-2222-3333")
	}
}

func TestPublishStockUpdatePayload(t *testing.T) {
	h := NewHub()
	product := model.ProductResponse{ProductID: "p-1", AvailableStock: 7}

	h.PublishStockUpdate(product, "RETURN", 3, "1111-2222-3333")

	payload := <-h.broadcast
	var event StockUpdateEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if event.Type != "stock_update" {
		t.Fatalf("type = %q", event.Type)
	}
	if event.Action != "RETURN" || event.Quantity != 3 {
		t.Fatalf("event = %+v", event)
	}
	if event.Product.AvailableStock != 7 {
		t.Fatalf("product = %+v", event.Product)
	}
	if event.Timestamp.IsZero() {
		t.Fatal("timestamp should be set")
	}
}
