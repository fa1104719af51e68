package model

type StockType string

const (
	StockPacked   StockType = "PACKED"
	StockUnpacked StockType = "UNPACKED"
)

func (t StockType) Valid() bool {
	return t == StockPacked || t == StockUnpacked
}

type StockAction string

const (
	StockAdd    StockAction = "ADD"
	StockReturn StockAction = "RETURN"
)

func (a StockAction) Valid() bool {
	return a == StockAdd || a == StockReturn
}

// Stock is a running total keyed by (product_id, stock_type); at most one row
// exists per pair. A ledger mutation either creates the row or atomically
// increments Stock plus the matching cumulative counter. StockNotes is an
// append-only audit text, one line per mutation.
type Stock struct {
	BaseModel
	StockID     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"stock_id"`
	ProductID   string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_stock_product_type" json:"product_id"`
	StockType   StockType `gorm:"type:varchar(20);not null;uniqueIndex:idx_stock_product_type" json:"stock_type"`
	Stock       int       `gorm:"not null" json:"stock"`
	AddStock    int       `gorm:"default:0" json:"add_stock"`
	ReturnStock int       `gorm:"default:0" json:"return_stock"`
	StockNotes  string    `gorm:"type:text" json:"stock_notes"`
}
