// Package flatfile は店舗データ一式をパイプ区切りのテキスト1ファイルに
// 書き出し・読み戻すコーデック。
//
// 1行1レコードで、先頭トークンが種別タグ（大文字小文字を区別しない）。
//
//	Member|name|id|address|phone|enrolledAt(RFC3339)
//	Product|name|id|restockAmount|price|stock
//	Shipment|name|id|price|stock
//	Transaction|<memberID|name|id|restock|price|stock|qty|linePrice|totalProducts|total>* ...
//
// Transaction は明細ごとに10フィールドのグループを「*」終端で繰り返す。
// 区切り文字をフィールド値に含めるエスケープは無いので、自由入力は
// 入力時に区切り文字を禁止しておくこと。
package flatfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
)

const (
	tagMember      = "member"
	tagProduct     = "product"
	tagShipment    = "shipment"
	tagTransaction = "transaction"
)

// 保存・復元対象のデータ一式。
// Shipments は発注中商品のスナップショット。
type Snapshot struct {
	Members      []model.Member
	Products     []model.Product
	Shipments    []model.Product
	Transactions []model.Transaction
}

// 読めなかったレコード1件分の報告。該当行は破棄される。
type RecordError struct {
	Line int
	Err  error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode はスナップショット全件をwに書き出す。
func Encode(w io.Writer, s Snapshot) error {
	bw := bufio.NewWriter(w)

	for _, m := range s.Members {
		fmt.Fprintf(bw, "Member|%s|%d|%s|%s|%s\n",
			m.Name, m.ID, m.Address, m.Phone, m.EnrolledAt.Format(time.RFC3339Nano))
	}
	for _, p := range s.Products {
		fmt.Fprintf(bw, "Product|%s|%d|%d|%s|%d\n",
			p.Name, p.ID, p.RestockAmount, formatFloat(p.Price), p.Stock)
	}
	// 元実装は price と stock の間の区切りを書き落としていた。
	// ここでは区切りを入れて書く（読み戻せない形式は保存しない）。
	for _, p := range s.Shipments {
		fmt.Fprintf(bw, "Shipment|%s|%d|%s|%d\n",
			p.Name, p.ID, formatFloat(p.Price), p.Stock)
	}
	for _, t := range s.Transactions {
		fmt.Fprint(bw, "Transaction|")
		for _, l := range t.Items {
			fmt.Fprintf(bw, "%d|%s|%d|%d|%s|%d|%d|%s|%d|%s*",
				t.MemberID,
				l.Product.Name, l.Product.ID, l.Product.RestockAmount,
				formatFloat(l.Product.Price), l.Product.Stock,
				l.Quantity, formatFloat(l.Price),
				t.TotalProducts, formatFloat(t.Total))
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}

func isDelimiter(r rune) bool {
	return r == '|' || r == '*' || r == '\r' || r == '\n' || r == '\f'
}

// Decode はrを行単位で読み、復元できたレコードと、破棄した行の
// 報告を返す。壊れた行があっても読み込みは最後まで続ける。
func Decode(r io.Reader) (Snapshot, []RecordError, error) {
	var snap Snapshot
	var bad []RecordError

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		tokens := strings.FieldsFunc(line, isDelimiter)
		if len(tokens) == 0 {
			continue
		}

		tag, fields := tokens[0], tokens[1:]
		var err error
		switch strings.ToLower(tag) {
		case tagMember:
			err = decodeMember(fields, &snap)
		case tagProduct:
			err = decodeProduct(fields, &snap)
		case tagShipment:
			err = decodeShipment(fields, &snap)
		case tagTransaction:
			err = decodeTransaction(fields, &snap)
		default:
			err = fmt.Errorf("unknown record tag %q", tag)
		}
		if err != nil {
			bad = append(bad, RecordError{Line: lineNo, Err: err})
		}
	}
	if err := sc.Err(); err != nil {
		return Snapshot{}, nil, err
	}
	return snap, bad, nil
}

func decodeMember(fields []string, snap *Snapshot) error {
	if len(fields) != 5 {
		return fmt.Errorf("member record needs 5 fields, got %d", len(fields))
	}
	id, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("member id: %w", err)
	}
	enrolledAt, err := time.Parse(time.RFC3339Nano, fields[4])
	if err != nil {
		return fmt.Errorf("member enrollment date: %w", err)
	}
	snap.Members = append(snap.Members, model.Member{
		ID:         id,
		Name:       fields[0],
		Address:    fields[2],
		Phone:      fields[3],
		FeePaid:    model.EnrollmentFee,
		EnrolledAt: enrolledAt,
	})
	return nil
}

func decodeProduct(fields []string, snap *Snapshot) error {
	if len(fields) != 5 {
		return fmt.Errorf("product record needs 5 fields, got %d", len(fields))
	}
	p, err := parseProductFields(fields[0], fields[1], fields[2], fields[3], fields[4])
	if err != nil {
		return err
	}
	snap.Products = append(snap.Products, p)
	return nil
}

func decodeShipment(fields []string, snap *Snapshot) error {
	if len(fields) != 4 {
		return fmt.Errorf("shipment record needs 4 fields, got %d", len(fields))
	}
	// 発注中スナップショットは restockAmount を持たない。
	p, err := parseProductFields(fields[0], fields[1], "0", fields[2], fields[3])
	if err != nil {
		return err
	}
	snap.Shipments = append(snap.Shipments, p)
	return nil
}

func parseProductFields(name, id, restock, price, stock string) (model.Product, error) {
	productID, err := strconv.Atoi(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("product id: %w", err)
	}
	restockAmount, err := strconv.Atoi(restock)
	if err != nil {
		return model.Product{}, fmt.Errorf("restock amount: %w", err)
	}
	priceValue, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return model.Product{}, fmt.Errorf("price: %w", err)
	}
	stockValue, err := strconv.Atoi(stock)
	if err != nil {
		return model.Product{}, fmt.Errorf("stock: %w", err)
	}
	return model.Product{
		ID:            productID,
		Name:          name,
		Price:         priceValue,
		Stock:         stockValue,
		RestockAmount: restockAmount,
	}, nil
}

// 1行の全グループで1件のTransactionを組み立てる。
// memberID・totalProducts・total は各グループに重複して
// 入っているので、最後のグループの値を採用する。
func decodeTransaction(fields []string, snap *Snapshot) error {
	if len(fields) == 0 {
		// 明細ゼロの取引は書き出し時点で空行相当になる。復元対象なし。
		return nil
	}
	if len(fields)%10 != 0 {
		return fmt.Errorf("transaction record needs groups of 10 fields, got %d", len(fields))
	}

	t := model.Transaction{Items: []model.LineItem{}}
	for i := 0; i < len(fields); i += 10 {
		g := fields[i : i+10]

		memberID, err := strconv.Atoi(g[0])
		if err != nil {
			return fmt.Errorf("transaction member id: %w", err)
		}
		p, err := parseProductFields(g[1], g[2], g[3], g[4], g[5])
		if err != nil {
			return err
		}
		quantity, err := strconv.Atoi(g[6])
		if err != nil {
			return fmt.Errorf("line quantity: %w", err)
		}
		linePrice, err := strconv.ParseFloat(g[7], 64)
		if err != nil {
			return fmt.Errorf("line price: %w", err)
		}
		totalProducts, err := strconv.Atoi(g[8])
		if err != nil {
			return fmt.Errorf("total products: %w", err)
		}
		total, err := strconv.ParseFloat(g[9], 64)
		if err != nil {
			return fmt.Errorf("transaction total: %w", err)
		}

		t.MemberID = memberID
		t.TotalProducts = totalProducts
		t.Total = total
		t.Items = append(t.Items, model.LineItem{Product: p, Quantity: quantity, Price: linePrice})
	}
	snap.Transactions = append(snap.Transactions, t)
	return nil
}
