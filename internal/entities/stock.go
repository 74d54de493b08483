package entities

// StockItem is the catalog's view of a sellable item.
type StockItem struct {
	ID                string
	Title             string
	Price             int64
	WeightGrams       int
	AvailableQuantity int
	SoldCount         int
	Published         bool
	Deleted           bool
}

func (i StockItem) Sellable() bool {
	return i.Published && !i.Deleted
}

// CartLine is what the client believes it is buying.
type CartLine struct {
	ItemID    string
	Quantity  int
	UnitPrice int64
}

// PricedCart is a cart whose prices and availability were confirmed against the catalog.
type PricedCart struct {
	Items       []OrderItem
	Subtotal    int64
	WeightGrams int
}

type CheckoutRequest struct {
	UserID         string
	Lines          []CartLine
	Address        Address
	ShippingMethod ShippingMethod
}

type CheckoutResult struct {
	Order        Order
	ClientSecret string
}
