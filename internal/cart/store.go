package cart

// ProductSnapshot is the denormalized slice of a listing a line item carries
// so the cart renders without refetching the product.
type ProductSnapshot struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price"`
	Image string   `json:"image"`
}

// LineItem is one (product, color, size) combination and its quantity.
type LineItem struct {
	ProductID  uint            `json:"productId"`
	ColorIndex int             `json:"colorIndex"`
	SizeIndex  int             `json:"sizeIndex"`
	ColorLabel string          `json:"colorLabel"`
	SizeLabel  string          `json:"sizeLabel"`
	Product    ProductSnapshot `json:"product"`
	Quantity   int             `json:"quantity"`
}

// Store holds the items one shopper intends to buy in the current session.
// Identity key is (productId, colorIndex, sizeIndex); insertion order is
// display order. Operations never fail: unmatched keys are silent no-ops.
//
// A Store belongs to a single session and is not safe for concurrent use;
// the Manager serializes access.
type Store struct {
	items []LineItem
	open  bool
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) find(productID uint, colorIndex, sizeIndex int) int {
	for i, it := range s.items {
		if it.ProductID == productID && it.ColorIndex == colorIndex && it.SizeIndex == sizeIndex {
			return i
		}
	}
	return -1
}

// AddItem merges the candidate into an existing line with the same identity
// key, otherwise appends it. A missing quantity counts as 1.
func (s *Store) AddItem(candidate LineItem) {
	if candidate.Quantity <= 0 {
		candidate.Quantity = 1
	}

	if i := s.find(candidate.ProductID, candidate.ColorIndex, candidate.SizeIndex); i >= 0 {
		s.items[i].Quantity += candidate.Quantity
		return
	}

	s.items = append(s.items, candidate)
}

// UpdateQuantity applies a delta to the matching line. Quantity is clamped at
// a floor of 1: decrementing never removes the line, RemoveItem does that.
func (s *Store) UpdateQuantity(productID uint, colorIndex, sizeIndex, delta int) {
	i := s.find(productID, colorIndex, sizeIndex)
	if i < 0 {
		return
	}

	q := s.items[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	s.items[i].Quantity = q
}

func (s *Store) RemoveItem(productID uint, colorIndex, sizeIndex int) {
	i := s.find(productID, colorIndex, sizeIndex)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Clear empties the cart (used after an order is placed).
func (s *Store) Clear() {
	s.items = nil
}

// Items returns the lines in display order.
func (s *Store) Items() []LineItem {
	out := make([]LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count is the total number of units, not distinct lines.
func (s *Store) Count() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// Subtotal sums price * quantity; a missing price contributes 0.
func (s *Store) Subtotal() float64 {
	var sum float64
	for _, it := range s.items {
		if it.Product.Price != nil {
			sum += *it.Product.Price * float64(it.Quantity)
		}
	}
	return sum
}

func (s *Store) IsInCart(productID uint, colorIndex, sizeIndex int) bool {
	return s.find(productID, colorIndex, sizeIndex) >= 0
}

// Panel state is display-only and independent of cart contents.

func (s *Store) Open()        { s.open = true }
func (s *Store) Close()       { s.open = false }
func (s *Store) Toggle()      { s.open = !s.open }
func (s *Store) IsOpen() bool { return s.open }
