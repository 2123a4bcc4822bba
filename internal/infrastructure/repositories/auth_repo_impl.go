package repositories

import (
	"context"
	"encoding/json"

	"nodex-club.backend/internal/domain/entities"
	domainerrors "nodex-club.backend/internal/domain/errors"
	"nodex-club.backend/internal/infrastructure/models"
	"nodex-club.backend/internal/infrastructure/pocketbase"
)

const (
	authKeysCollection   = "auth_keys"
	memberKeysCollection = "member_keys"
	blockedIPsCollection = "blocked_ips"
)

type AuthKeyRepository struct {
	client *pocketbase.Client
}

func NewAuthKeyRepository(client *pocketbase.Client) *AuthKeyRepository {
	return &AuthKeyRepository{client: client}
}

func (r *AuthKeyRepository) FindByKey(ctx context.Context, key string) (*entities.AuthKey, error) {
	result, err := r.client.List(ctx, authKeysCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("key = %s && active = true", key),
		PerPage: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.AuthKey
	if err := json.Unmarshal(result.Items[0], &m); err != nil {
		return nil, err
	}
	return &entities.AuthKey{
		ID:       m.ID,
		Key:      m.Key,
		Label:    m.Label,
		TeamMgmt: m.TeamMgmt,
		Active:   m.Active,
	}, nil
}

type MemberKeyRepository struct {
	client *pocketbase.Client
}

func NewMemberKeyRepository(client *pocketbase.Client) *MemberKeyRepository {
	return &MemberKeyRepository{client: client}
}

func (r *MemberKeyRepository) ListByMember(ctx context.Context, memberID string) ([]*entities.MemberKey, error) {
	result, err := r.client.List(ctx, memberKeysCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("member_id = %s && active = true", memberID),
		PerPage: pocketbase.MaxPerPage,
	})
	if err != nil {
		return nil, err
	}
	items := make([]*entities.MemberKey, 0, len(result.Items))
	for _, raw := range result.Items {
		var m models.MemberKey
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, err
		}
		items = append(items, &entities.MemberKey{
			ID:       m.ID,
			MemberID: m.MemberID,
			KeyHash:  m.KeyHash,
			KeyType:  m.KeyType,
			Active:   m.Active,
		})
	}
	return items, nil
}

type BlockedIPRepository struct {
	client *pocketbase.Client
}

func NewBlockedIPRepository(client *pocketbase.Client) *BlockedIPRepository {
	return &BlockedIPRepository{client: client}
}

func (r *BlockedIPRepository) FindByIP(ctx context.Context, ip string) (*entities.BlockedIP, error) {
	result, err := r.client.List(ctx, blockedIPsCollection, pocketbase.ListOptions{
		Filter:  pocketbase.Filterf("ip = %s", ip),
		PerPage: 1,
	})
	if err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	var m models.BlockedIP
	if err := json.Unmarshal(result.Items[0], &m); err != nil {
		return nil, err
	}
	return &entities.BlockedIP{
		ID:          m.ID,
		IP:          m.IP,
		Reason:      m.Reason,
		RedirectURL: m.RedirectURL,
	}, nil
}
