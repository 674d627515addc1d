package model

// カートの明細。追加時点の商品スナップショットを保持する。
// Price は数量変更のたびに unit price * quantity で再計算される。
type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func NewLineItem(p Product, quantity int) LineItem {
	return LineItem{
		Product:  p,
		Quantity: quantity,
		Price:    p.Price * float64(quantity),
	}
}

// 数量を更新し、明細価格を引き直す。
func (l *LineItem) SetQuantity(p Product, quantity int) {
	l.Product = p
	l.Quantity = quantity
	l.Price = p.Price * float64(quantity)
}

// 会計セッション1回分のカート。会員1人に紐づき、
// 同一商品は明細を増やさず数量加算する。
// TotalProducts は明細（商品種別）の数。
type Cart struct {
	MemberID      int        `json:"member_id"`
	Items         []LineItem `json:"items"`
	TotalProducts int        `json:"total_products"`
}

func NewCart(memberID int) *Cart {
	return &Cart{MemberID: memberID, Items: []LineItem{}}
}

// productID の明細を返す。無ければ nil。
func (c *Cart) Find(productID int) *LineItem {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Cart) Add(item LineItem) {
	c.Items = append(c.Items, item)
	c.TotalProducts++
}

// 明細価格の合計。
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.Items {
		total += l.Price
	}
	return total
}
