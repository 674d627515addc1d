package model

// 商品。IDは呼び出し側が指定し、カタログ内で一意。
// Stockを減らすのは会計確定、増やすのは入荷処理だけ。
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Stock         int     `json:"stock"`
	RestockAmount int     `json:"restock_amount"`
}

// 発注数量は保存せず、常に最低在庫数の2倍を導出する。
func (p Product) ReorderQuantity() int {
	return p.RestockAmount * 2
}
