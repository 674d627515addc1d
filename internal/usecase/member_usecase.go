package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// 会員登録・検索・更新・退会の業務ロジック。
type MemberUsecase struct {
	memberRepo repo.MemberRepository
	clock      Clock
}

// DI
func NewMemberUsecase(memberRepo repo.MemberRepository, clock Clock) *MemberUsecase {
	return &MemberUsecase{memberRepo: memberRepo, clock: clock}
}

type EnrollMemberInput struct {
	Name    string
	Address string
	Phone   string
}

// 更新は渡されたフィールドだけ反映する（空は据え置き）。
type UpdateMemberInput struct {
	Name    string
	Address string
	Phone   string
}

func validateFreeText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewHTTPError(http.StatusBadRequest, field+" required")
	}
	if containsReservedChar(value) {
		return NewHTTPError(http.StatusBadRequest, "invalid character in "+field)
	}
	return nil
}

// Enroll は入会金支払い済みの会員を登録し、採番されたIDを含めて返す。
func (u *MemberUsecase) Enroll(ctx context.Context, in EnrollMemberInput) (model.Member, error) {
	if err := validateFreeText("name", in.Name); err != nil {
		return model.Member{}, err
	}
	if err := validateFreeText("address", in.Address); err != nil {
		return model.Member{}, err
	}
	if err := validateFreeText("phone", in.Phone); err != nil {
		return model.Member{}, err
	}

	m := model.Member{
		Name:       strings.TrimSpace(in.Name),
		Address:    strings.TrimSpace(in.Address),
		Phone:      strings.TrimSpace(in.Phone),
		FeePaid:    model.EnrollmentFee,
		EnrolledAt: u.clock.Now(),
	}
	created, err := u.memberRepo.Create(ctx, m)
	if err != nil {
		return model.Member{}, NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	return created, nil
}

func (u *MemberUsecase) List(ctx context.Context) ([]model.Member, error) {
	members, err := u.memberRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	return members, nil
}

// 名前の完全一致検索（大文字小文字を区別しない）。
func (u *MemberUsecase) SearchByName(ctx context.Context, name string) ([]model.Member, error) {
	if strings.TrimSpace(name) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "name required")
	}
	members, err := u.memberRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	return members, nil
}

// Update は会員の連絡先フィールドを差し替える。IDは変わらない。
func (u *MemberUsecase) Update(ctx context.Context, memberID int, in UpdateMemberInput) (model.Member, error) {
	if memberID <= 0 {
		return model.Member{}, NewHTTPError(http.StatusBadRequest, "invalid member id")
	}

	m, err := u.memberRepo.FindByID(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Member{}, NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return model.Member{}, NewHTTPError(http.StatusInternalServerError, "registry error")
	}

	if in.Name != "" {
		if err := validateFreeText("name", in.Name); err != nil {
			return model.Member{}, err
		}
		m.Name = strings.TrimSpace(in.Name)
	}
	if in.Address != "" {
		if err := validateFreeText("address", in.Address); err != nil {
			return model.Member{}, err
		}
		m.Address = strings.TrimSpace(in.Address)
	}
	if in.Phone != "" {
		if err := validateFreeText("phone", in.Phone); err != nil {
			return model.Member{}, err
		}
		m.Phone = strings.TrimSpace(in.Phone)
	}

	if err := u.memberRepo.Update(ctx, m); err != nil {
		return model.Member{}, NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	return m, nil
}

// Remove は会員を退会させる。過去の取引は会員IDの生値を持った
// まま残る。
func (u *MemberUsecase) Remove(ctx context.Context, memberID int) error {
	if memberID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid member id")
	}
	err := u.memberRepo.Delete(ctx, memberID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "member not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "registry error")
	}
	return nil
}
