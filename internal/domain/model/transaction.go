package model

import "time"

// 確定済みの取引。作成後は変更も削除もされない。
// 明細は確定時点のスナップショットなので、以後の価格変更は
// 過去の取引合計に影響しない。
type Transaction struct {
	ID            string     `json:"id"`
	MemberID      int        `json:"member_id"`
	Items         []LineItem `json:"items"`
	TotalProducts int        `json:"total_products"`
	Total         float64    `json:"total"`
	DateOfSale    time.Time  `json:"date_of_sale"`
}
