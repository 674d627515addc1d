package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"app/internal/domain/model"
	"app/internal/infra/flatfile"
	repo "app/internal/repository"
)

const defaultStoreFile = "grocery_store.txt"

// StoreUsecase はデータ一式の保存と復元を担う。
// 復元はファイルを最後まで読めた場合だけデータを入れ替える。
// 読み込み自体に失敗したときはメモリ上のデータに手を付けない。
type StoreUsecase struct {
	memberRepo      repo.MemberRepository
	productRepo     repo.ProductRepository
	reorderRepo     repo.ReorderRepository
	transactionRepo repo.TransactionRepository
	idGen           IDGenerator
	clock           Clock
	dataDir         string
}

// DI
func NewStoreUsecase(
	memberRepo repo.MemberRepository,
	productRepo repo.ProductRepository,
	reorderRepo repo.ReorderRepository,
	transactionRepo repo.TransactionRepository,
	idGen IDGenerator,
	clock Clock,
	dataDir string,
) *StoreUsecase {
	return &StoreUsecase{
		memberRepo:      memberRepo,
		productRepo:     productRepo,
		reorderRepo:     reorderRepo,
		transactionRepo: transactionRepo,
		idGen:           idGen,
		clock:           clock,
		dataDir:         dataDir,
	}
}

type SaveOutput struct {
	// 実際に書き込んだファイル名。既存ファイルと衝突した
	// 場合は連番付きの名前になる。
	File string `json:"file"`
}

type LoadOutput struct {
	Members      int `json:"members"`
	Products     int `json:"products"`
	Shipments    int `json:"shipments"`
	Transactions int `json:"transactions"`
	// 破棄したレコードの報告。1件壊れていても残りは読む。
	Skipped []string `json:"skipped,omitempty"`
}

func (u *StoreUsecase) resolveFile(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultStoreFile
	}
	if filepath.Base(name) != name {
		return "", NewHTTPError(http.StatusBadRequest, "invalid file name")
	}
	if !strings.HasSuffix(name, ".txt") {
		return "", NewHTTPError(http.StatusBadRequest, "file must use .txt extension")
	}
	return filepath.Join(u.dataDir, name), nil
}

// Save はデータ一式を1ファイルに書き出す。既存ファイルは
// 上書きしない。
func (u *StoreUsecase) Save(ctx context.Context, fileName string) (SaveOutput, error) {
	path, err := u.resolveFile(fileName)
	if err != nil {
		return SaveOutput{}, err
	}

	snap, err := u.snapshot(ctx)
	if err != nil {
		return SaveOutput{}, err
	}

	f, actual, err := flatfile.CreateExclusive(path)
	if err != nil {
		return SaveOutput{}, NewHTTPError(http.StatusInternalServerError, "file error")
	}
	if err := flatfile.Encode(f, snap); err != nil {
		f.Close()
		return SaveOutput{}, NewHTTPError(http.StatusInternalServerError, "file error")
	}
	if err := f.Close(); err != nil {
		return SaveOutput{}, NewHTTPError(http.StatusInternalServerError, "file error")
	}

	logger.Info().Str("file", actual).Msg("store state saved")
	return SaveOutput{File: filepath.Base(actual)}, nil
}

func (u *StoreUsecase) snapshot(ctx context.Context) (flatfile.Snapshot, error) {
	members, err := u.memberRepo.List(ctx)
	if err != nil {
		return flatfile.Snapshot{}, NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	products, err := u.productRepo.List(ctx)
	if err != nil {
		return flatfile.Snapshot{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
	}
	reorderIDs, err := u.reorderRepo.List(ctx)
	if err != nil {
		return flatfile.Snapshot{}, NewHTTPError(http.StatusInternalServerError, "reorder error")
	}
	transactions, err := u.transactionRepo.List(ctx)
	if err != nil {
		return flatfile.Snapshot{}, NewHTTPError(http.StatusInternalServerError, "transaction log error")
	}

	shipments := make([]model.Product, 0, len(reorderIDs))
	for _, id := range reorderIDs {
		p, err := u.productRepo.FindByID(ctx, id)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return flatfile.Snapshot{}, NewHTTPError(http.StatusInternalServerError, "catalog error")
		}
		shipments = append(shipments, p)
	}

	return flatfile.Snapshot{
		Members:      members,
		Products:     products,
		Shipments:    shipments,
		Transactions: transactions,
	}, nil
}

// Load はファイルからデータ一式を復元する。復元されたレコード
// は実行時と同じ挿入APIを通すので、ID重複などの不変条件は
// ロードにも等しく効く。弾かれたレコードは報告して読み飛ばす。
func (u *StoreUsecase) Load(ctx context.Context, fileName string) (LoadOutput, error) {
	path, err := u.resolveFile(fileName)
	if err != nil {
		return LoadOutput{}, err
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return LoadOutput{}, NewHTTPError(http.StatusNotFound, "file not found")
	}
	if err != nil {
		return LoadOutput{}, NewHTTPError(http.StatusInternalServerError, "file error")
	}
	defer f.Close()

	snap, recordErrs, err := flatfile.Decode(f)
	if err != nil {
		// ここで失敗した場合はメモリ上のデータに触れていない。
		return LoadOutput{}, NewHTTPError(http.StatusInternalServerError, "file error")
	}

	var out LoadOutput
	for _, re := range recordErrs {
		out.Skipped = append(out.Skipped, re.Error())
	}

	for _, r := range []interface {
		Reset(ctx context.Context) error
	}{u.memberRepo, u.productRepo, u.reorderRepo, u.transactionRepo} {
		if err := r.Reset(ctx); err != nil {
			return LoadOutput{}, NewHTTPError(http.StatusInternalServerError, "reset error")
		}
	}

	for _, m := range snap.Members {
		if err := u.memberRepo.Insert(ctx, m); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("member %d: %v", m.ID, err))
			continue
		}
		out.Members++
	}
	for _, p := range snap.Products {
		if err := u.productRepo.Create(ctx, p); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("product %d: %v", p.ID, err))
			continue
		}
		out.Products++
	}
	// 発注中レコードは発注キューにだけ戻す。カタログ側の実体は
	// Productレコードが持っている。
	for _, s := range snap.Shipments {
		if err := u.reorderRepo.Add(ctx, s.ID); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("shipment %d: %v", s.ID, err))
			continue
		}
		out.Shipments++
	}
	// 取引日時は保存形式に含まれないため、復元時刻を付ける。
	for _, t := range snap.Transactions {
		t.ID = u.idGen.NewID()
		t.DateOfSale = u.clock.Now()
		if err := u.transactionRepo.Append(ctx, t); err != nil {
			out.Skipped = append(out.Skipped, fmt.Sprintf("transaction for member %d: %v", t.MemberID, err))
			continue
		}
		out.Transactions++
	}

	for _, s := range out.Skipped {
		logger.Warn().Str("record", s).Msg("record skipped during load")
	}
	logger.Info().
		Int("members", out.Members).
		Int("products", out.Products).
		Int("shipments", out.Shipments).
		Int("transactions", out.Transactions).
		Msg("store state loaded")
	return out, nil
}
